package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/restaurant-api/models"
	"github.com/littlelemon/restaurant-api/repository"
	"github.com/littlelemon/restaurant-api/serializers"
	"github.com/littlelemon/restaurant-api/utils"
)

type MenuItemController struct {
	Items repository.Gateway[models.MenuItem]
}

func NewMenuItemController(items repository.Gateway[models.MenuItem]) *MenuItemController {
	return &MenuItemController{Items: items}
}

// GetAllMenuItems
func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.Items.ListAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.EncodeMenuItems(items))
}

// CreateMenuItem
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	data, ok := bindData(c)
	if !ok {
		return
	}
	in, err := serializers.DecodeMenuItem(data, false)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	item := in.Record()
	if err := mc.Items.Create(c.Request.Context(), &item); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s", item)
	c.JSON(http.StatusCreated, serializers.EncodeMenuItem(&item))
}

// GetMenuItemByID
func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := mc.Items.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.EncodeMenuItem(item))
}

// UpdateMenuItem replaces every field; an omitted inventory resets to 0.
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	data, ok := bindData(c)
	if !ok {
		return
	}
	in, err := serializers.DecodeMenuItem(data, false)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	item := in.Record()
	if err := mc.Items.Update(c.Request.Context(), id, &item); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.EncodeMenuItem(&item))
}

// PartialUpdateMenuItem changes only the fields present in the body.
func (mc *MenuItemController) PartialUpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	data, ok := bindData(c)
	if !ok {
		return
	}
	in, err := serializers.DecodeMenuItem(data, true)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	item, err := mc.Items.PartialUpdate(c.Request.Context(), id, in.Apply)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.EncodeMenuItem(item))
}

// DeleteMenuItem
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := mc.Items.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item %d deleted", id)
	c.Status(http.StatusNoContent)
}
