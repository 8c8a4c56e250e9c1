package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"github.com/hazyhaar/wordfam-registry/pkg/family"
	"github.com/hazyhaar/wordfam-registry/pkg/kit"
	"github.com/hazyhaar/wordfam-registry/pkg/store"
	"github.com/hazyhaar/wordfam-registry/pkg/vocab"
)

// Deps bundles everything the router dispatches to.
type Deps struct {
	Index      vocab.Index
	Store      *store.Store
	Aggregator *family.Aggregator
	Populator  *family.Populator
	Logger     *slog.Logger
}

type handler struct {
	search        kit.Endpoint
	familyStats   kit.Endpoint
	wordStats     kit.Endpoint
	gradeStats    kit.Endpoint
	populate      kit.Endpoint
	listMappings  kit.Endpoint
	upsertMapping kit.Endpoint
	bulkMapping   kit.Endpoint
	listRecords   kit.Endpoint
	updateRecord  kit.Endpoint
	deleteRecord  kit.Endpoint
	bulkDelete    kit.Endpoint
	store         *store.Store
}

// NewRouter returns an http.Handler with all registry API routes.
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	logged := func(name string, e kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.Logging(d.Logger, name))(e)
	}

	h := &handler{
		search:        logged("search", searchEndpoint(d.Index)),
		familyStats:   logged("family_stats", familyStatsEndpoint(d.Aggregator)),
		wordStats:     logged("word_stats", wordStatsEndpoint(d.Aggregator, d.Store)),
		gradeStats:    logged("grade_stats", gradeStatsEndpoint(d.Store)),
		populate:      logged("populate", populateEndpoint(d.Populator, d.Aggregator)),
		listMappings:  logged("list_mappings", listMappingsEndpoint(d.Store)),
		upsertMapping: logged("upsert_mapping", upsertMappingEndpoint(d.Store)),
		bulkMapping:   logged("bulk_mapping", bulkMappingEndpoint(d.Store)),
		listRecords:   logged("list_records", listRecordsEndpoint(d.Store)),
		updateRecord:  logged("update_record", updateRecordEndpoint(d.Store)),
		deleteRecord:  logged("delete_record", deleteRecordEndpoint(d.Store)),
		bulkDelete:    logged("bulk_delete", bulkDeleteEndpoint(d.Store)),
		store:         d.Store,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/health", h.handleHealth)
	mux.HandleFunc("GET /v1/vocabulary/search", h.handleSearch)
	mux.HandleFunc("POST /v1/populate", h.handlePopulate)
	mux.HandleFunc("GET /v1/stats/families", h.handleFamilyStats)
	mux.HandleFunc("GET /v1/stats/words", h.handleWordStats)
	mux.HandleFunc("GET /v1/stats/words-by-grade", h.handleGradeStats)
	mux.HandleFunc("GET /v1/word-families", h.handleListMappings)
	mux.HandleFunc("PUT /v1/word-families", h.handleUpsertMapping)
	mux.HandleFunc("POST /v1/word-families", h.handleBulkMapping)
	mux.HandleFunc("GET /v1/records", h.handleListRecords)
	mux.HandleFunc("PUT /v1/records/{id}", h.handleUpdateRecord)
	mux.HandleFunc("DELETE /v1/records/{id}", h.handleDeleteRecord)
	mux.HandleFunc("POST /v1/records/bulk-delete", h.handleBulkDelete)

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

func (h *handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	word := q.Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word parameter is required")
		return
	}
	typ := q.Get("type")
	if typ == "" {
		typ = "forward"
	}
	h.respond(w, r, h.search, &searchReq{Word: word, Type: typ})
}

func (h *handler) handlePopulate(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.populate, nil)
}

func (h *handler) handleFamilyStats(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.familyStats, &familyStatsReq{Family: r.URL.Query().Get("family")})
}

func (h *handler) handleWordStats(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.wordStats, &wordStatsReq{Word: r.URL.Query().Get("word")})
}

func (h *handler) handleGradeStats(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.gradeStats, nil)
}

func (h *handler) handleListMappings(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.listMappings, nil)
}

func (h *handler) handleUpsertMapping(w http.ResponseWriter, r *http.Request) {
	var req upsertMappingReq
	if !decodeBody(w, r, &req) {
		return
	}
	h.respond(w, r, h.upsertMapping, &req)
}

func (h *handler) handleBulkMapping(w http.ResponseWriter, r *http.Request) {
	var req bulkMappingReq
	if !decodeBody(w, r, &req) {
		return
	}
	h.respond(w, r, h.bulkMapping, &req)
}

func (h *handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.listRecords, nil)
}

func (h *handler) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var rec store.Record
	if !decodeBody(w, r, &rec) {
		return
	}
	rec.ID = id
	h.respond(w, r, h.updateRecord, &rec)
}

func (h *handler) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	h.respond(w, r, h.deleteRecord, &deleteRecordReq{ID: id})
}

func (h *handler) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteReq
	if !decodeBody(w, r, &req) {
		return
	}
	h.respond(w, r, h.bulkDelete, &req)
}

type healthResponse struct {
	Status     string `json:"status"`
	Vocabulary int    `json:"vocabulary"`
	Records    int    `json:"records"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	vocabN, err := h.store.VocabularyCount(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	recN, err := h.store.RecordCount(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Vocabulary: vocabN, Records: recN})
}

// --- helpers ---

// respond runs the endpoint and maps its error to a status code:
// malformed input 400, no data 404, everything else 500.
func (h *handler) respond(w http.ResponseWriter, r *http.Request, e kit.Endpoint, req any) {
	resp, err := e(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalid):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 256*1024)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
