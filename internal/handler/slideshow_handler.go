package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slides/internal/db"
	"github.com/slides/internal/editor"
	"github.com/slides/internal/service"
)

// ShowList 渲染幻灯片列表
func (a *API) ShowList(c *gin.Context) {
	entries, err := a.slideshows.List()
	if err != nil {
		a.logger.Error("list slideshows", "error", err)
		c.String(http.StatusInternalServerError, "Failed to list slideshows")
		return
	}

	a.renderHTML(c, http.StatusOK, "list.html", gin.H{
		"title":   "Slideshows",
		"entries": entries,
	})
}

// ShowEdit 渲染编辑页面；文档不存在时给出以 slug 命名的空草稿
func (a *API) ShowEdit(c *gin.Context) {
	slug := c.Param("slug")
	show, _, err := a.slideshows.Draft(slug)
	if err != nil {
		a.handleLoadError(c, slug, err)
		return
	}

	session := editor.New(slug, show)
	fields := session.Fields()
	a.renderHTML(c, http.StatusOK, "edit.html", gin.H{
		"title":     "Edit: " + session.Title(),
		"slug":      session.Slug(),
		"showTitle": session.Title(),
		"slides":    session.Slides(),
		"current":   session.Current(),
		"image":     fields.Image,
		"text":      fields.Text,
	})
}

// SaveSlideshow 整体保存一个幻灯片文档
func (a *API) SaveSlideshow(c *gin.Context) {
	var input service.SaveInput
	if !bindJSON(c, &input, msgInvalidData) {
		return
	}

	if err := a.slideshows.Save(c.Request.Context(), input); err != nil {
		switch {
		case errors.Is(err, service.ErrSlugRequired), errors.Is(err, db.ErrInvalidSlug):
			respondError(c, http.StatusBadRequest, msgInvalidData)
		default:
			a.logger.Error("save slideshow", "slug", input.Slug, "error", err)
			respondError(c, http.StatusInternalServerError, "Failed to save slideshow")
		}
		return
	}

	respondSuccess(c)
}

// DeleteSlideshow 删除幻灯片文档
func (a *API) DeleteSlideshow(c *gin.Context) {
	slug := c.Param("slug")
	if err := a.slideshows.Delete(slug); err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound), errors.Is(err, db.ErrInvalidSlug):
			respondError(c, http.StatusNotFound, msgNotFound)
		default:
			a.logger.Error("delete slideshow", "slug", slug, "error", err)
			respondError(c, http.StatusInternalServerError, "Failed to delete slideshow")
		}
		return
	}

	respondSuccess(c)
}

func (a *API) handleLoadError(c *gin.Context, slug string, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound), errors.Is(err, db.ErrInvalidSlug):
		c.String(http.StatusNotFound, msgSlideshowNotFound)
	case errors.Is(err, db.ErrCorruptDocument):
		a.logger.Warn("unreadable slideshow", "slug", slug, "error", err)
		c.String(http.StatusInternalServerError, msgSlideshowCorrupt)
	default:
		a.logger.Error("load slideshow", "slug", slug, "error", err)
		c.String(http.StatusInternalServerError, "Failed to load slideshow")
	}
}
