package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodplanner/backend/internal/service"
)

type IngredientHandler struct {
	ingredients *service.IngredientService
}

func NewIngredientHandler(ingredients *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ingredients", h.List)
	router.POST("/add_ingredients", h.Add)
	router.POST("/update_ingredient_status", h.UpdateStatus)
	router.POST("/remove_ingredient", h.Remove)
}

func (h *IngredientHandler) List(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	ingredients, err := h.ingredients.List(username)
	if err != nil {
		log.Printf("Listing ingredients for %q failed: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *IngredientHandler) Add(c *gin.Context) {
	var req AddIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username == "" || len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and ingredients are required"})
		return
	}

	items := make([]service.IngredientItem, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		if in.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient name is required"})
			return
		}
		items = append(items, service.IngredientItem{Name: in.Name, Checked: in.Checked})
	}

	if err := h.ingredients.Add(req.Username, items); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Adding ingredients for %q failed: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add ingredients: " + err.Error()})
		return
	}

	ingredients, err := h.ingredients.List(req.Username)
	if err != nil {
		log.Printf("Listing ingredients for %q failed: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Ingredients added successfully",
		"ingredients": ingredients,
	})
}

func (h *IngredientHandler) UpdateStatus(c *gin.Context) {
	var req UpdateIngredientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username == "" || len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and ingredients are required"})
		return
	}

	for _, in := range req.Ingredients {
		if in.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient name is required"})
			return
		}
		if err := h.ingredients.SetChecked(req.Username, in.Name, in.Checked); err != nil {
			log.Printf("Updating ingredient status for %q failed: %v", req.Username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient status: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ingredient status updated successfully"})
}

func (h *IngredientHandler) Remove(c *gin.Context) {
	var req RemoveIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username == "" || req.Ingredient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and ingredient are required"})
		return
	}

	if err := h.ingredients.Remove(req.Username, req.Ingredient); err != nil {
		log.Printf("Removing ingredient for %q failed: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove ingredient: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ingredient removed successfully"})
}
