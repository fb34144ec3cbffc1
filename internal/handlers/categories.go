package handlers

import (
	"net/http"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest is the create/update payload of a category.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100" example:"Food"`
	Description string `json:"description" binding:"max=255" example:"Groceries and eating out"`
	Type        string `json:"type" binding:"required,txtype" example:"EXPENSE"`
}

func (r CategoryRequest) input() service.CategoryInput {
	return service.CategoryInput{Name: r.Name, Description: r.Description, Type: models.TransactionType(r.Type)}
}

// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   models.Category
// @Failure      401  {object}  expense_tracker.UnauthorizedResponse
// @Failure      500  {object}  expense_tracker.MessageResponse
// @Router       /api/categories [get]
// @Security     BearerAuth
func (h *Handler) listCategories(c *gin.Context) {
	list, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "categories_list_failed")
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      List categories by type
// @Tags         categories
// @Produce      json
// @Param        type  path      string  true  "Category type"  Enums(INCOME,EXPENSE)
// @Success      200   {array}   models.Category
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      401   {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/categories/type/{type} [get]
// @Security     BearerAuth
func (h *Handler) listCategoriesByType(c *gin.Context) {
	typ, ok := pathType(c)
	if !ok {
		return
	}
	list, err := h.services.Categories.ListByType(c.Request.Context(), typ)
	if err != nil {
		h.writeError(c, err, "categories_list_by_type_failed", "type", typ)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  models.Category
// @Failure      401  {object}  expense_tracker.UnauthorizedResponse
// @Failure      404  {object}  expense_tracker.MessageResponse
// @Router       /api/categories/{id} [get]
// @Security     BearerAuth
func (h *Handler) getCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cat, err := h.services.Categories.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "category_get_failed", "category_id", id)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      CategoryRequest  true  "Category"
// @Success      201   {object}  models.Category
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      401   {object}  expense_tracker.UnauthorizedResponse
// @Router       /api/categories [post]
// @Security     BearerAuth
func (h *Handler) createCategory(c *gin.Context) {
	var req CategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	cat, err := h.services.Categories.Create(c.Request.Context(), req.input())
	if err != nil {
		h.writeError(c, err, "category_create_failed")
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Category id"
// @Param        body  body      CategoryRequest  true  "Category"
// @Success      200   {object}  models.Category
// @Failure      400   {object}  expense_tracker.MessageResponse
// @Failure      401   {object}  expense_tracker.UnauthorizedResponse
// @Failure      404   {object}  expense_tracker.MessageResponse
// @Router       /api/categories/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	cat, err := h.services.Categories.Update(c.Request.Context(), id, req.input())
	if err != nil {
		h.writeError(c, err, "category_update_failed", "category_id", id)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Delete category
// @Description  Also deletes every transaction of the category.
// @Tags         categories
// @Param        id   path  int  true  "Category id"
// @Success      200
// @Failure      401  {object}  expense_tracker.UnauthorizedResponse
// @Failure      404  {object}  expense_tracker.MessageResponse
// @Router       /api/categories/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.services.Categories.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "category_delete_failed", "category_id", id)
		return
	}
	c.Status(http.StatusOK)
}
