package handlers

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blloydimmunology/Portfolio/pkg/services"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

type notifyRequest struct {
	Secret  string `json:"secret"`
	Title   string `json:"title"`
	Topic   string `json:"topic"`
	Slug    string `json:"slug"`
	Preview string `json:"preview"`
}

// Subscribe adds the address to the mailing list and sends one
// confirmation email. Business-rule rejections from the store surface
// verbatim as 400s.
func (a *API) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := a.Subscribers.Add(req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			c.JSON(400, gin.H{"error": "Invalid email address"})
		case errors.Is(err, services.ErrAlreadySubscribed):
			c.JSON(400, gin.H{"error": "Already subscribed"})
		default:
			c.JSON(500, gin.H{"error": "Failed to subscribe"})
		}
		return
	}

	if err := a.Mailer.Send(c.Request.Context(), req.Email, "Subscription Confirmed", confirmationEmail()); err != nil {
		// The subscription itself succeeded; the confirmation is best effort.
		log.Printf("confirmation email to %s failed: %v", req.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscribed successfully"})
}

// Unsubscribe removes the address from the mailing list.
func (a *API) Unsubscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := a.Subscribers.Remove(req.Email); err != nil {
		if errors.Is(err, services.ErrNotSubscribed) {
			c.JSON(404, gin.H{"error": "Email not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to unsubscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unsubscribed successfully"})
}

// Notify emails every subscriber about a newly published post. It is
// authenticated by exact match against the server-held secret.
func (a *API) Notify(c *gin.Context) {
	var req notifyRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid JSON"})
		return
	}

	if a.Config.NotifySecret == "" ||
		subtle.ConstantTimeCompare([]byte(req.Secret), []byte(a.Config.NotifySecret)) != 1 {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	if req.Title == "" || req.Topic == "" || req.Slug == "" {
		c.JSON(400, gin.H{"error": "Missing required fields: title, topic, slug"})
		return
	}

	subscribers, err := a.Subscribers.List()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load subscribers"})
		return
	}

	if len(subscribers) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No subscribers to notify", "count": 0})
		return
	}

	postURL := fmt.Sprintf("%s/%s/%s", a.Config.SiteURL, strings.ToLower(req.Topic), req.Slug)
	body := notificationEmail(req.Title, req.Topic, req.Preview, postURL)

	count := 0
	for _, email := range subscribers {
		if err := a.Mailer.Send(c.Request.Context(), email, "New Post: "+req.Title, body); err != nil {
			log.Printf("notify email to %s failed: %v", email, err)
			continue
		}
		count++
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Notified %d subscriber(s)", count),
		"count":   count,
	})
}

func confirmationEmail() string {
	return `<div style="font-family: system-ui, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #0d7377; text-align: center;">Thanks for Subscribing!</h1>
  <p style="color: #374151; line-height: 1.6;">
    You've successfully subscribed to receive updates when new posts are published.
  </p>
  <p style="color: #6b7280; font-size: 14px; margin-top: 32px;">
    If you didn't request this subscription, you can safely ignore this email.
  </p>
</div>`
}

func notificationEmail(title, topic, preview, postURL string) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: system-ui, sans-serif; max-width: 600px; margin: 0 auto;">`)
	fmt.Fprintf(&b, `<h1 style="color: #0d7377;">%s</h1>`, title)
	fmt.Fprintf(&b, `<p style="color: #6b7280; font-size: 14px; margin-bottom: 16px;">%s</p>`, topic)
	if preview != "" {
		fmt.Fprintf(&b, `<p style="color: #374151; line-height: 1.6; margin-bottom: 24px;">%s</p>`, preview)
	}
	fmt.Fprintf(&b, `<a href="%s" style="display: inline-block; background-color: #0d7377; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: 500;">Read Post</a>`, postURL)
	b.WriteString(`<p style="color: #9ca3af; font-size: 12px; margin-top: 32px;">You're receiving this because you subscribed to updates.</p>`)
	b.WriteString(`</div>`)
	return b.String()
}
