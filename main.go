package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/blloydimmunology/Portfolio/pkg/config"
	"github.com/blloydimmunology/Portfolio/pkg/handlers"
	"github.com/blloydimmunology/Portfolio/pkg/services"
)

func main() {
	cfg := config.Load()

	styles, err := cfg.LoadTopicStyles()
	if err != nil {
		log.Fatalf("load topic styles: %v", err)
	}

	posts := services.NewPostStore(cfg.ContentDir)
	subscribers := services.NewSubscriberStore(cfg.SubscribersFile)
	mailer := services.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)

	api := handlers.New(cfg, posts, subscribers, mailer, styles)

	r := gin.Default()

	apiRoutes := r.Group("/api")
	{
		apiRoutes.GET("/posts", api.ListPosts)
		apiRoutes.GET("/posts/:topic/:slug", api.GetPost)
		apiRoutes.GET("/topics", api.ListTopics)
		apiRoutes.GET("/topics/:topic/posts", api.ListPostsByTopic)
		apiRoutes.GET("/topics/:topic/subtopics", api.ListSubtopics)
		apiRoutes.GET("/search", api.SearchPosts)
		apiRoutes.POST("/subscribe", api.Subscribe)
		apiRoutes.POST("/unsubscribe", api.Unsubscribe)
		apiRoutes.POST("/notify", api.Notify)
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
