package handlers

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hirestack/hirestack/internal/services"
	"github.com/hirestack/hirestack/internal/utils"
)

const maxAssetSize = 5 << 20

type CompanyHandler struct {
	svc services.CompanyService
}

func NewCompanyHandler(svc services.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

func (h *CompanyHandler) Register(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req services.RegisterCompanyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CompanyHandler.Register", "invalid request body", err))
		return
	}

	company, err := h.svc.Register(c.Request.Context(), actor.UserID, actor.CompanyID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"company": company,
	})
}

func (h *CompanyHandler) Profile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	company, err := h.svc.GetProfile(c.Request.Context(), actor.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"company": company,
	})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req services.UpdateCompanyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CompanyHandler.Update", "invalid request body", err))
		return
	}

	company, err := h.svc.UpdateProfile(c.Request.Context(), actor.UserID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"company": company,
	})
}

func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	h.uploadAsset(c, services.AssetLogo)
}

func (h *CompanyHandler) UploadBanner(c *gin.Context) {
	h.uploadAsset(c, services.AssetBanner)
}

// uploadAsset reads the multipart file named after the asset kind,
// sniffs it to make sure it is an image, and hands the stream to the
// service. Only the stored URL is returned.
func (h *CompanyHandler) uploadAsset(c *gin.Context, kind string) {
	const op = "CompanyHandler.UploadAsset"

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	fh, err := c.FormFile(kind)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "no file uploaded", err))
		return
	}
	if fh.Size <= 0 || fh.Size > maxAssetSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file too large (max 5MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer file.Close()

	// sniff content type (read 512 bytes)
	head := make([]byte, 512)
	n, _ := file.Read(head)
	head = head[:n]
	ct := http.DetectContentType(head)
	if !strings.HasPrefix(ct, "image/") {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file must be an image", nil))
		return
	}

	// re-compose stream: head + remaining file
	r := io.MultiReader(bytes.NewReader(head), file)

	url, err := h.svc.UploadAsset(c.Request.Context(), actor.UserID, kind, fh.Filename, ct, r)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                  true,
		"company_" + kind + "_url": url,
	})
}

// List is the public, unauthenticated company directory.
func (h *CompanyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	out, err := h.svc.List(c.Request.Context(), services.ListCompaniesInput{
		Search:       c.Query("search"),
		IndustryType: c.Query("industry_type"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"companies":  out.Companies,
		"count":      out.Count,
		"total":      out.Total,
		"page":       out.Page,
		"totalPages": out.TotalPages,
	})
}
