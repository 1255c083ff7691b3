package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/blloydimmunology/Portfolio/pkg/config"
)

// Posts a new-article notification to the running site's notify endpoint,
// the same way the site itself would be called after publishing.

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: notify <title> <topic> <slug> [preview]")
		fmt.Println(`Example: notify "Vaccine Basics" "Immunology" "vaccine-basics" "Learn about vaccines"`)
		os.Exit(1)
	}

	cfg := config.Load()

	payload := map[string]string{
		"secret": cfg.NotifySecret,
		"title":  os.Args[1],
		"topic":  os.Args[2],
		"slug":   os.Args[3],
	}
	if len(os.Args) > 4 {
		payload["preview"] = os.Args[4]
	}

	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Post(cfg.SiteURL+"/api/notify", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to notify subscribers:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var result struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = json.Unmarshal(data, &result)

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintln(os.Stderr, "Error:", result.Error)
		os.Exit(1)
	}
	fmt.Println(result.Message)
}
