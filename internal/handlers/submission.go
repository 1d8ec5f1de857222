package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/jorguzz-fer/aquinaotem/internal/categorize"
	"github.com/jorguzz-fer/aquinaotem/internal/iphash"
	"github.com/jorguzz-fer/aquinaotem/internal/models"
	"github.com/jorguzz-fer/aquinaotem/internal/ratelimit"
	"github.com/jorguzz-fer/aquinaotem/internal/store"
	"github.com/jorguzz-fer/aquinaotem/internal/validate"
)

// User-facing messages, kept in Portuguese as the site displays them verbatim.
const (
	msgBadRequest      = "Requisição inválida."
	msgMissingText     = "O que está faltando é obrigatório."
	msgTextTooShort    = "Por favor, detalhe um pouco mais (mínimo 10 caracteres)."
	msgInvalidCategory = "Categoria inválida."
	msgRateLimited     = "Muitas tentativas. Tente novamente em um minuto."
	msgInternal        = "Erro interno ao salvar."
)

// RegisterSubmissionRoutes registers the intake endpoint.
//
// POST /submissions
//   - Anonymous; identity for throttling comes from the hashed origin address
//   - Pipeline: parse → validate → rate-check → categorize → persist
//   - Categorization is best-effort and can never fail the request
func RegisterSubmissionRoutes(r gin.IRoutes, city string, st store.Store, limiter *ratelimit.Limiter, cat categorize.Categorizer) {
	handler := func(c *gin.Context) {
		var req models.SubmissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.SubmissionResponse{Error: msgBadRequest})
			return
		}

		sub, err := validate.Submission(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.SubmissionResponse{Error: validationMessage(err)})
			return
		}

		hash := iphash.Hash(iphash.FromRequest(c.Request))

		allowed, err := limiter.Allow(c.Request.Context(), hash)
		if err != nil {
			log.WithError(err).Error("rate-limit count failed")
			c.JSON(http.StatusInternalServerError, models.SubmissionResponse{Error: msgInternal})
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, models.SubmissionResponse{Error: msgRateLimited})
			return
		}

		// Only infer a category when the caller picked none. A failure here
		// is logged and the submission proceeds uncategorized.
		if sub.Category == nil {
			label, err := cat.Categorize(c.Request.Context(), sub.TextOriginal)
			if err != nil {
				log.WithError(err).Warn("categorization failed, continuing without category")
			} else if label != "" {
				sub.Category = &label
			}
		}

		id, err := st.InsertSubmission(c.Request.Context(), models.Submission{
			City:         city,
			Category:     sub.Category,
			TextOriginal: sub.TextOriginal,
			Comment:      sub.Comment,
			IPHash:       &hash,
		})
		if err != nil {
			log.WithError(err).Error("submission insert failed")
			c.JSON(http.StatusInternalServerError, models.SubmissionResponse{Error: msgInternal})
			return
		}

		c.JSON(http.StatusCreated, models.SubmissionResponse{OK: true, ID: id})
	}

	r.POST("/submissions", handler)
	// Route used by the deployed frontend.
	r.POST("/api/missing-items", handler)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, validate.ErrMissingText):
		return msgMissingText
	case errors.Is(err, validate.ErrTextTooShort):
		return msgTextTooShort
	case errors.Is(err, validate.ErrInvalidCategory):
		return msgInvalidCategory
	}
	return msgBadRequest
}
