package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

func newReviewsHandler(reviews *stubReviewsRepo) *ReviewsHandler {
	businesses := &stubBusinessesRepo{items: sampleBusinesses()}
	return NewReviewsHandler(service.NewReviewsService(reviews, businesses))
}

func TestReviewsHandler_Create(t *testing.T) {
	tests := map[string]struct {
		business   string
		payload    any
		wantStatus int
	}{
		"pending review":      {business: "kigali-beans", payload: map[string]any{"rating": 5, "content": "Great coffee"}, wantStatus: http.StatusCreated},
		"rating out of range": {business: "kigali-beans", payload: map[string]any{"rating": 6, "content": "Great coffee"}, wantStatus: http.StatusBadRequest},
		"empty content":       {business: "kigali-beans", payload: map[string]any{"rating": 4, "content": "   "}, wantStatus: http.StatusBadRequest},
		"inactive business":   {business: "lake-view-hotel", payload: map[string]any{"rating": 4, "content": "Nice"}, wantStatus: http.StatusNotFound},
		"unknown business":    {business: "nowhere", payload: map[string]any{"rating": 4, "content": "Nice"}, wantStatus: http.StatusNotFound},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := &stubReviewsRepo{}
			e := echo.New()
			req, rec := jsonRequest(t, http.MethodPost, "/businesses/"+tt.business+"/reviews", tt.payload)
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.business)

			_ = newReviewsHandler(repo).Create(c)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus == http.StatusCreated && repo.created.Status != entity.ReviewStatusPending {
				t.Fatalf("expected pending review, got %q", repo.created.Status)
			}
		})
	}
}

func TestReviewsHandler_ListApproved(t *testing.T) {
	repo := &stubReviewsRepo{items: []entity.Review{{ID: uuid.New(), Rating: 5}}, total: 1}
	e := echo.New()
	req, rec := jsonRequest(t, http.MethodGet, "/businesses/kigali-beans/reviews?page=1&per_page=5", nil)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("kigali-beans")

	_ = newReviewsHandler(repo).List(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if repo.lastFilter.Status != string(entity.ReviewStatusApproved) || repo.lastFilter.PerPage != 5 {
		t.Fatalf("unexpected filter %+v", repo.lastFilter)
	}
}

func TestReviewsHandler_ListApprovedInactiveBusiness(t *testing.T) {
	repo := &stubReviewsRepo{items: []entity.Review{{ID: uuid.New(), Rating: 5}}, total: 1}
	e := echo.New()
	req, rec := jsonRequest(t, http.MethodGet, "/businesses/lake-view-hotel/reviews", nil)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("lake-view-hotel")

	_ = newReviewsHandler(repo).List(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestReviewsHandler_Moderation(t *testing.T) {
	t.Run("list by status", func(t *testing.T) {
		repo := &stubReviewsRepo{}
		e := echo.New()
		req, rec := jsonRequest(t, http.MethodGet, "/admin/reviews?status=in_review", nil)
		c := e.NewContext(req, rec)

		_ = newReviewsHandler(repo).ListAdmin(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if repo.lastFilter.Status != "in_review" {
			t.Fatalf("expected in_review, got %q", repo.lastFilter.Status)
		}
	})

	t.Run("list invalid status", func(t *testing.T) {
		e := echo.New()
		req, rec := jsonRequest(t, http.MethodGet, "/admin/reviews?status=hidden", nil)
		c := e.NewContext(req, rec)

		_ = newReviewsHandler(&stubReviewsRepo{}).ListAdmin(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("approve", func(t *testing.T) {
		repo := &stubReviewsRepo{}
		id := uuid.NewString()
		e := echo.New()
		req, rec := jsonRequest(t, http.MethodPatch, "/admin/reviews/"+id+"/status", map[string]string{"status": "Approved"})
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)

		_ = newReviewsHandler(repo).SetStatus(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if repo.statusSet != entity.ReviewStatusApproved {
			t.Fatalf("expected approved, got %q", repo.statusSet)
		}
	})

	t.Run("delete bad id", func(t *testing.T) {
		e := echo.New()
		req, rec := jsonRequest(t, http.MethodDelete, "/admin/reviews/abc", nil)
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		_ = newReviewsHandler(&stubReviewsRepo{}).Delete(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
