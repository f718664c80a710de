package handle

import (
	"encoding/base64"
	"net/http"

	"calc-be/api/internal/mathops"
	"calc-be/api/internal/util"
)

// Тонкие эндпоинты: прямые вызовы во внешние math-библиотеки, без своего
// парсинга. Плохой вход здесь — обычный 400, контракт status=* относится
// только к /calculate.

type EvaluateRequest struct {
	Expression string         `json:"expression"`
	Variables  map[string]any `json:"variables,omitempty"`
}

func (h *Handle) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req EvaluateRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	result, err := mathops.Evaluate(req.Expression, req.Variables)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

type DifferentiateRequest struct {
	Expression string  `json:"expression"`
	Variable   string  `json:"variable,omitempty"`
	At         float64 `json:"at"`
}

func (h *Handle) Differentiate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req DifferentiateRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	result, err := mathops.DerivativeAt(req.Expression, req.Variable, req.At)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

type IntegrateRequest struct {
	Expression string  `json:"expression"`
	Variable   string  `json:"variable,omitempty"`
	From       float64 `json:"from"`
	To         float64 `json:"to"`
}

func (h *Handle) Integrate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req IntegrateRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	result, err := mathops.IntegrateOver(req.Expression, req.Variable, req.From, req.To)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

type PlotRequest struct {
	Expression string  `json:"expression"`
	XMin       float64 `json:"x_min"`
	XMax       float64 `json:"x_max"`
}

func (h *Handle) Plot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req PlotRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	png, err := mathops.PlotFunction(req.Expression, req.XMin, req.XMax)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dataURL := util.MakeDataURL("image/png", base64.StdEncoding.EncodeToString(png))
	writeJSON(w, http.StatusOK, map[string]any{"image": dataURL})
}

type ConvertRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

func (h *Handle) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req ConvertRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	result, err := mathops.Convert(req.Value, req.From, req.To)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"result": result,
		"from":   req.From,
		"to":     req.To,
	})
}
