package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/leadhub/app/jobs"
	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/resources"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/internal/importer"
	"github.com/shashiranjanraj/leadhub/pkg/bind"
	"github.com/shashiranjanraj/leadhub/pkg/middleware"
	"github.com/shashiranjanraj/leadhub/pkg/queue"
	"github.com/shashiranjanraj/leadhub/pkg/resource"
	"github.com/shashiranjanraj/leadhub/pkg/response"
	"github.com/shashiranjanraj/leadhub/pkg/sse"
)

// AdminController hosts the inventory, import, approval and dashboard
// endpoints. Every route here sits behind the admin role check.
type AdminController struct {
	leads   *services.LeadService
	orders  *services.OrderService
	users   *services.UserService
	imports *services.ImportService
	stats   *services.StatsService
}

func NewAdminController(
	leads *services.LeadService,
	orders *services.OrderService,
	users *services.UserService,
	imports *services.ImportService,
	stats *services.StatsService,
) *AdminController {
	return &AdminController{leads: leads, orders: orders, users: users, imports: imports, stats: stats}
}

// ─── Leads ────────────────────────────────────────────────────────────────────

func (c *AdminController) Leads(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	leads, p, err := c.leads.All(r.Context(), page, limit)
	if err != nil {
		fail(w, err)
		return
	}
	resource.CollectionOf(&resources.AdminLeadResource{}, leads).
		WithPagination(p).
		Respond(w)
}

type leadBody struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email" validate:"nullable,email"`
	JobTitle      string  `json:"jobTitle"`
	WebsiteName   string  `json:"websiteName"`
	WebsiteURL    string  `json:"websiteUrl" validate:"nullable,url"`
	Instagram     string  `json:"instagram"`
	LinkedIn      string  `json:"linkedin"`
	TikTok        string  `json:"tiktok"`
	Industry      string  `json:"industry"`
	Location      string  `json:"location"`
	Founded       string  `json:"founded"`
	FacebookPixel string  `json:"facebookPixel"`
	Price         float64 `json:"price" validate:"nullable,gte=0"`
	Status        string  `json:"status" validate:"nullable,in=available,unavailable"`
}

func (b leadBody) toModel() models.Lead {
	return models.Lead{
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		JobTitle:      b.JobTitle,
		WebsiteName:   b.WebsiteName,
		WebsiteURL:    b.WebsiteURL,
		Instagram:     b.Instagram,
		LinkedIn:      b.LinkedIn,
		TikTok:        b.TikTok,
		Industry:      b.Industry,
		Location:      b.Location,
		Founded:       b.Founded,
		FacebookPixel: b.FacebookPixel,
		Price:         b.Price,
		Status:        b.Status,
	}
}

func (c *AdminController) CreateLead(w http.ResponseWriter, r *http.Request) {
	var body leadBody
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	lead, err := c.leads.Create(r.Context(), body.toModel())
	if err != nil {
		fail(w, err)
		return
	}
	response.Created(w, (&resources.AdminLeadResource{}).ToArray(lead))
}

func (c *AdminController) UpdateLead(w http.ResponseWriter, r *http.Request) {
	existing, err := c.leads.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err)
		return
	}

	var body leadBody
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	lead := body.toModel()
	lead.ID = existing.ID
	lead.CreatedAt = existing.CreatedAt
	if err := c.leads.Update(r.Context(), lead); err != nil {
		fail(w, err)
		return
	}
	response.Success(w, (&resources.AdminLeadResource{}).ToArray(lead))
}

func (c *AdminController) DeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := c.leads.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "Deleted"})
}

// ─── Bulk import ──────────────────────────────────────────────────────────────

const maxImportBytes = 32 << 20 // 32 MB upload cap

// Import runs a bulk upload and streams progress back over SSE. The client
// sees the same "Uploaded N of M leads..." messages the pipeline emits.
func (c *AdminController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	stream := sse.New(w, r)
	if stream == nil {
		return
	}

	// Errors are already reported through the stream as terminal events.
	_, _ = c.imports.FromUpload(r.Context(), header.Filename, file, func(e importer.Event) {
		stream.Send("progress", e) //nolint:errcheck
	})
}

// ImportAsync stows the upload and queues it for a background worker.
// Responds immediately with a job id the client polls for progress.
func (c *AdminController) ImportAsync(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	archive, err := c.imports.Stow(header.Filename, file)
	if err != nil {
		fail(w, err)
		return
	}

	jobID := services.NewImportJobID()
	services.RecordProgress(jobID, importer.Event{Message: "Queued"})
	if err := queue.Dispatch(jobs.ImportJob{JobID: jobID, Archive: archive}); err != nil {
		fail(w, err)
		return
	}

	response.Created(w, map[string]string{"jobId": jobID})
}

// ImportFromURL imports a remote file, synchronously.
func (c *AdminController) ImportFromURL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url" validate:"required,url"`
	}
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	var last importer.Event
	written, err := c.imports.FromURL(r.Context(), body.URL, func(e importer.Event) { last = e })
	if err != nil {
		response.Error(w, http.StatusUnprocessableEntity, last.Message)
		return
	}
	response.Success(w, map[string]interface{}{"imported": written, "message": last.Message})
}

// ImportStatus reports the latest progress of an async import.
func (c *AdminController) ImportStatus(w http.ResponseWriter, r *http.Request) {
	e, ok := services.Progress(chi.URLParam(r, "jobId"))
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, e)
}

// ─── Orders ───────────────────────────────────────────────────────────────────

func (c *AdminController) Orders(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	orders, p, err := c.orders.All(r.Context(), page, limit)
	if err != nil {
		fail(w, err)
		return
	}
	resource.CollectionOf(&resources.AdminOrderResource{}, orders).
		WithPagination(p).
		Respond(w)
}

func (c *AdminController) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	order, err := c.orders.Approve(r.Context(), chi.URLParam(r, "id"), claims.Email)
	if err != nil {
		fail(w, err)
		return
	}
	resource.New(&resources.AdminOrderResource{}, order).Respond(w)
}

// ─── Dashboard ────────────────────────────────────────────────────────────────

func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	snap, err := c.stats.Overview(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	response.Success(w, snap)
}

func (c *AdminController) Users(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	users, p, err := c.users.All(r.Context(), page, limit)
	if err != nil {
		fail(w, err)
		return
	}
	response.Paginated(w, users, p)
}
