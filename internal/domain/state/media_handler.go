package state

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devbhoomi/tourism-api/internal/pkg/request"
	"github.com/devbhoomi/tourism-api/internal/pkg/response"
)

// ListImages handles GET /states/{key}/images
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.ListImages(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items := make([]*ImageResponse, len(images))
	for i, img := range images {
		items[i] = ImageResponseFromEntity(img, h.files)
	}
	response.OK(w, items)
}

// AddImage handles POST /states/{key}/images
func (h *Handler) AddImage(w http.ResponseWriter, r *http.Request) {
	var req CreateImageRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	img, err := h.service.AddImage(r.Context(), chi.URLParam(r, "key"), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, ImageResponseFromEntity(img, h.files))
}

// DeleteImage handles DELETE /states/images/{id}
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	if err := h.service.DeleteImage(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "State image deleted")
}

// ListHistory handles GET /states/{key}/history
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListHistory(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items := make([]*HistoryResponse, len(entries))
	for i, e := range entries {
		items[i] = HistoryResponseFromEntity(e, h.files)
	}
	response.OK(w, items)
}

// AddHistory handles POST /states/{key}/history
func (h *Handler) AddHistory(w http.ResponseWriter, r *http.Request) {
	var req CreateHistoryRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	entry, err := h.service.AddHistory(r.Context(), chi.URLParam(r, "key"), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, HistoryResponseFromEntity(entry, h.files))
}

// UpdateHistory handles PUT /states/history/{id}
func (h *Handler) UpdateHistory(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid history ID")
		return
	}

	var req UpdateHistoryRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	entry, err := h.service.UpdateHistory(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, HistoryResponseFromEntity(entry, h.files))
}

// DeleteHistory handles DELETE /states/history/{id}
func (h *Handler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid history ID")
		return
	}

	if err := h.service.DeleteHistory(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "History entry deleted")
}
