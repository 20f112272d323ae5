package handler

import (
	"net/http"

	"github.com/farhanadi/bloomlog/internal/dto"
	"github.com/farhanadi/bloomlog/internal/service"
	"github.com/farhanadi/bloomlog/pkg/apperror"
	"github.com/farhanadi/bloomlog/pkg/response"
	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	service service.GalleryService
}

func NewGalleryHandler(service service.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

func (h *GalleryHandler) ListImages(c *gin.Context) {
	images, err := h.service.ListImages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": images})
}

func (h *GalleryHandler) UploadImage(c *gin.Context) {
	var req dto.UploadImageRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}
	defer file.Close()

	image, err := h.service.UploadImage(c.Request.Context(), req.Title, &service.ImageFile{
		Reader:   file,
		FileName: fileHeader.Filename,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, image)
}
