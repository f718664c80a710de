package handle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"calc-be/api/internal/answer"
	"calc-be/api/internal/calc"
	"calc-be/api/internal/store"
	"calc-be/api/internal/util"
)

type CalculateRequest struct {
	Image      string         `json:"image"`
	DictOfVars map[string]any `json:"dict_of_vars"`
	Subject    string         `json:"subject,omitempty"`
}

type CalculateResponse struct {
	Message string          `json:"message"`
	Data    []answer.Record `json:"data"`
	Status  string          `json:"status"`
}

// Calculate решает задачу с картинки. Ошибки входа/декода — status=error;
// пустой результат пайплайна — status=warning; всё остальное — success
// (в том числе синтетическая error-запись при отказе модели).
func (h *Handle) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req CalculateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusOK, CalculateResponse{
			Message: "Invalid request body",
			Data:    []answer.Record{},
			Status:  "error",
		})
		return
	}

	if strings.TrimSpace(req.Image) == "" {
		writeJSON(w, http.StatusOK, CalculateResponse{
			Message: "No image data provided",
			Data:    []answer.Record{},
			Status:  "error",
		})
		return
	}

	img, hintMIME, err := util.DecodeBase64MaybeDataURL(req.Image)
	if err != nil || len(img) == 0 {
		writeJSON(w, http.StatusOK, CalculateResponse{
			Message: "Invalid base64 image data",
			Data:    []answer.Record{},
			Status:  "error",
		})
		return
	}
	mime := util.PickMIME("", hintMIME, img)

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = calc.DefaultSubject
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestDeadline(r))
	defer cancel()

	hash := imageHash(img)
	if recs, ok := h.cachedSolve(ctx, hash, subject); ok {
		writeJSON(w, http.StatusOK, CalculateResponse{
			Message: "Image processed successfully",
			Data:    recs,
			Status:  "success",
		})
		return
	}

	recs := h.solver.Solve(ctx, img, mime, req.DictOfVars, subject)
	if len(recs) == 0 {
		writeJSON(w, http.StatusOK, CalculateResponse{
			Message: "No results found",
			Data:    []answer.Record{},
			Status:  "warning",
		})
		return
	}
	h.storeSolve(ctx, hash, subject, recs)

	log.Printf("handle: processed %d records for subject=%s", len(recs), subject)
	writeJSON(w, http.StatusOK, CalculateResponse{
		Message: "Image processed successfully",
		Data:    recs,
		Status:  "success",
	})
}

func (h *Handle) cachedSolve(ctx context.Context, hash, subject string) ([]answer.Record, bool) {
	if h.cache == nil {
		return nil, false
	}
	recs, err := h.cache.FindByHash(ctx, hash, subject, h.model, cacheMaxAge)
	if err != nil {
		if err != store.ErrNotFound {
			log.Printf("handle: cache lookup failed: %v", err)
		}
		return nil, false
	}
	log.Printf("handle: cache hit for %s/%s", subject, hash[:12])
	return recs, true
}

// storeSolve пишет в кэш по принципу best effort: отказ кэша не влияет на ответ.
// Синтетическая error-запись не кэшируется: сбой модели временный, повтор
// запроса должен дойти до движка, а не до кэша.
func (h *Handle) storeSolve(ctx context.Context, hash, subject string, recs []answer.Record) {
	if h.cache == nil {
		return
	}
	if len(recs) == 1 && recs[0].IsError() {
		return
	}
	if err := h.cache.Upsert(ctx, hash, subject, h.model, recs); err != nil {
		log.Printf("handle: cache upsert failed: %v", err)
	}
}

func imageHash(img []byte) string {
	sum := sha256.Sum256(img)
	return hex.EncodeToString(sum[:])
}

// requestDeadline: заголовок X-Request-Timeout, затем ?timeoutSec, иначе 180s.
func requestDeadline(r *http.Request) time.Duration {
	deadline := 180 * time.Second
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	} else if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	return deadline
}
