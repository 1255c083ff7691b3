package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blloydimmunology/Portfolio/pkg/config"
	"github.com/blloydimmunology/Portfolio/pkg/models"
	"github.com/blloydimmunology/Portfolio/pkg/services"
)

// API bundles the stores and collaborators the route handlers need.
type API struct {
	Config      *config.Config
	Posts       *services.PostStore
	Subscribers *services.SubscriberStore
	Mailer      services.Mailer
	TopicStyles map[string]config.TopicStyle
}

func New(cfg *config.Config, posts *services.PostStore, subscribers *services.SubscriberStore, mailer services.Mailer, styles map[string]config.TopicStyle) *API {
	return &API{
		Config:      cfg,
		Posts:       posts,
		Subscribers: subscribers,
		Mailer:      mailer,
		TopicStyles: styles,
	}
}

func (a *API) ListPosts(c *gin.Context) {
	posts, err := a.Posts.All()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (a *API) ListTopics(c *gin.Context) {
	names, err := a.Posts.Topics()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load posts"})
		return
	}

	topics := make([]models.Topic, 0, len(names))
	for _, name := range names {
		style := a.TopicStyles[name]
		topics = append(topics, models.Topic{
			Name:  name,
			Icon:  style.Icon,
			Color: style.Color,
		})
	}
	c.JSON(http.StatusOK, topics)
}

func (a *API) ListPostsByTopic(c *gin.Context) {
	posts, err := a.Posts.ByTopic(c.Param("topic"))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (a *API) ListSubtopics(c *gin.Context) {
	subtopics, err := a.Posts.Subtopics(c.Param("topic"))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, subtopics)
}

func (a *API) GetPost(c *gin.Context) {
	post, found, err := a.Posts.Get(c.Param("topic"), c.Param("slug"))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load posts"})
		return
	}
	if !found {
		c.JSON(404, gin.H{"error": "Post not found"})
		return
	}

	html, err := services.RenderMarkdown(post.Content)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to render post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post": post,
		"html": html,
	})
}

// SearchPosts guards very short queries at the boundary: anything under
// two characters returns an empty result instead of matching everything.
func (a *API) SearchPosts(c *gin.Context) {
	query := c.Query("q")
	if len(query) < 2 {
		c.JSON(http.StatusOK, []models.Post{})
		return
	}

	posts, err := a.Posts.Search(query)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}
