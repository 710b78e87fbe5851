package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"microblog/internal/apperr"
	"microblog/internal/middleware"
	"microblog/internal/services"
)

type FeedHandler struct {
	feedService *services.FeedService
}

func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListPosts returns the feed page for the viewer, anonymous or not.
// GET /feed/posts?page=N
func (h *FeedHandler) ListPosts(c *gin.Context) {
	posts, total, err := h.feedService.ListPosts(c.Request.Context(), middleware.GetUserID(c), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Posts fetched.",
		"posts":      posts,
		"totalItems": total,
	})
}

// ListPending returns the moderation queue. Admin only.
// GET /feed/post-requests?page=N
func (h *FeedHandler) ListPending(c *gin.Context) {
	posts, total, err := h.feedService.ListPending(c.Request.Context(), middleware.GetUserID(c), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Pending posts fetched.",
		"posts":      posts,
		"totalItems": total,
	})
}

// Approve publishes a pending post. Admin only.
// POST /feed/post-request/:postId
func (h *FeedHandler) Approve(c *gin.Context) {
	post, err := h.feedService.Approve(c.Request.Context(), c.Param("postId"), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post approved.",
		"post":    post,
	})
}

// Create inserts a new pending post for the authenticated user.
// POST /feed/post
func (h *FeedHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body.", nil))
		return
	}

	post, author, err := h.feedService.CreatePost(c.Request.Context(), middleware.GetUserID(c), req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully.",
		"post":    post,
		"author": gin.H{
			"_id":  author.ID.Hex(),
			"name": author.Name(),
		},
	})
}

// Get fetches a single post.
// GET /feed/post/:postId
func (h *FeedHandler) Get(c *gin.Context) {
	post, err := h.feedService.GetPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post fetched.",
		"post":    post,
	})
}

// Update overwrites a post's title and content. Author only.
// PUT /feed/post/:postId
func (h *FeedHandler) Update(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body.", nil))
		return
	}

	post, err := h.feedService.UpdatePost(c.Request.Context(), c.Param("postId"), middleware.GetUserID(c), req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated.",
		"post":    post,
	})
}

// Delete removes a post. Author only.
// DELETE /feed/post/:postId
func (h *FeedHandler) Delete(c *gin.Context) {
	post, err := h.feedService.DeletePost(c.Request.Context(), c.Param("postId"), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post deleted.",
		"post":    post,
	})
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
