package fakebackend

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/greenloop/greenloop-go/pkg/types"
)

const defaultPageSize = 20

// window reads page and size from the query. sizeKey is page_size or limit
// depending on the router being imitated.
func window(r *http.Request, sizeKey string) (page, size int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	size, _ = strconv.Atoi(r.URL.Query().Get(sizeKey))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	return page, size
}

func slice[T any](rows []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(rows) {
		return []T{}
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func totalPages(total, size int) int {
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}

// legacyEnvelope is the resource-named list body most routers return.
func legacyEnvelope[T any](key string, rows []T, page, size int) map[string]any {
	return map[string]any{
		key:           slice(rows, page, size),
		"total":       len(rows),
		"page":        page,
		"page_size":   size,
		"total_pages": totalPages(len(rows), size),
	}
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text := strings.ToLower(q.Get("query"))

	s.mu.Lock()
	rows := make([]types.ItemListItem, 0, len(s.data.items))
	for _, it := range s.data.items {
		if text != "" && !strings.Contains(strings.ToLower(it.Title), text) {
			continue
		}
		if v := q.Get("category_id"); v != "" && it.CategoryID != v {
			continue
		}
		if v := q.Get("condition"); v != "" && string(it.Condition) != v {
			continue
		}
		rows = append(rows, s.listItem(it))
	}
	s.mu.Unlock()

	page, size := window(r, "page_size")
	writeJSON(w, http.StatusOK, legacyEnvelope("items", rows, page, size))
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	it, ok := s.data.item(chi.URLParam(r, "itemID"))
	s.mu.Unlock()
	if !ok {
		writeDetail(w, http.StatusNotFound, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleItemCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cats := append([]types.Category(nil), s.data.categories...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, cats)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cats := append([]types.Category(nil), s.data.categories...)
	s.mu.Unlock()
	page, size := window(r, "page_size")
	writeJSON(w, http.StatusOK, legacyEnvelope("categories", cats, page, size))
}

func (s *Server) handleUploadImages(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	s.mu.Lock()
	it, ok := s.data.item(itemID)
	s.mu.Unlock()
	if !ok {
		writeDetail(w, http.StatusNotFound, "Item not found")
		return
	}
	if it.OwnerID != subjectFrom(r.Context()) {
		writeDetail(w, http.StatusForbidden, "Not authorized to modify this item")
		return
	}
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeDetail(w, http.StatusBadRequest, "multipart form expected")
		return
	}

	var uploaded []types.ItemImage
	for _, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			uploaded = append(uploaded, types.ItemImage{
				ID:        fmt.Sprintf("img-%d", len(uploaded)+1),
				URL:       fmt.Sprintf("https://cdn.greenloop.test/items/%s/%s", itemID, fh.Filename),
				IsPrimary: len(uploaded) == 0 && len(it.Images) == 0,
				SortOrder: len(it.Images) + len(uploaded),
			})
		}
	}
	if len(uploaded) == 0 {
		writeDetail(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	s.mu.Lock()
	for i := range s.data.items {
		if s.data.items[i].ID == itemID {
			s.data.items[i].Images = append(s.data.items[i].Images, uploaded...)
			it = s.data.items[i]
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, types.ItemImageUpload{
		Message:        fmt.Sprintf("%d images uploaded", len(uploaded)),
		UploadedImages: uploaded,
		TotalImages:    len(it.Images),
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	acct, ok := s.data.accounts[chi.URLParam(r, "userID")]
	var user types.User
	if ok {
		user = acct.user
		user.Email = ""
	}
	s.mu.Unlock()
	if !ok {
		writeDetail(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleListExchanges(w http.ResponseWriter, r *http.Request) {
	me := subjectFrom(r.Context())
	status := r.URL.Query().Get("status")

	s.mu.Lock()
	rows := []types.ExchangeListItem{}
	for _, ex := range s.data.exchanges {
		if ex.RequesterID != me && ex.OwnerID != me {
			continue
		}
		if status != "" && string(ex.Status) != status {
			continue
		}
		other := ex.OwnerID
		if other == me {
			other = ex.RequesterID
		}
		row := types.ExchangeListItem{
			ID:                 ex.ID,
			Status:             ex.Status,
			RequesterItemTitle: titleOf(ex.RequesterItem),
			OwnerItemTitle:     titleOf(ex.OwnerItem),
			OtherUserID:        other,
			CreatedAt:          ex.CreatedAt,
		}
		if acct, ok := s.data.accounts[other]; ok {
			row.OtherUserUsername = acct.user.Username
			rating := acct.user.ReputationScore
			row.OtherUserRating = &rating
		}
		rows = append(rows, row)
	}
	s.mu.Unlock()

	page, size := window(r, "page_size")
	writeJSON(w, http.StatusOK, legacyEnvelope("exchanges", rows, page, size))
}

func (s *Server) handleGetExchange(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "exchangeID")
	me := subjectFrom(r.Context())

	s.mu.Lock()
	var found *types.Exchange
	for i := range s.data.exchanges {
		if s.data.exchanges[i].ID == id {
			ex := s.data.exchanges[i]
			found = &ex
		}
	}
	s.mu.Unlock()

	switch {
	case found == nil:
		writeDetail(w, http.StatusNotFound, "Exchange not found")
	case found.RequesterID != me && found.OwnerID != me:
		writeDetail(w, http.StatusForbidden, "Not authorized to view this exchange")
	default:
		writeJSON(w, http.StatusOK, found)
	}
}

// handleListNotifications answers with the generic paginated envelope.
func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	me := subjectFrom(r.Context())
	isRead := r.URL.Query().Get("is_read")

	s.mu.Lock()
	rows := []types.Notification{}
	for _, n := range s.data.notifications {
		if n.UserID != me {
			continue
		}
		if isRead != "" && strconv.FormatBool(n.IsRead) != isRead {
			continue
		}
		rows = append(rows, n)
	}
	s.mu.Unlock()

	page, size := window(r, "page_size")
	writeJSON(w, http.StatusOK, map[string]any{
		"data": slice(rows, page, size),
		"pagination": map[string]int{
			"page":       page,
			"limit":      size,
			"total":      len(rows),
			"totalPages": totalPages(len(rows), size),
		},
	})
}

// handleAdminItems returns a bare array with upper-case status codes, the way
// the moderation router does.
func (s *Server) handleAdminItems(w http.ResponseWriter, r *http.Request) {
	status := strings.ToLower(r.URL.Query().Get("status"))

	s.mu.Lock()
	rows := []types.ItemListItem{}
	for _, it := range s.data.items {
		if status != "" && string(it.Status) != status {
			continue
		}
		row := s.listItem(it)
		row.Status = strings.ToUpper(row.Status)
		rows = append(rows, row)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))

	s.mu.Lock()
	rows := []types.UserListItem{}
	for _, acct := range s.data.accounts {
		u := acct.user
		if search != "" && !strings.Contains(strings.ToLower(u.Username+" "+u.FullName), search) {
			continue
		}
		rows = append(rows, types.UserListItem{
			ID:              u.ID,
			Username:        u.Username,
			FirstName:       u.FirstName,
			LastName:        u.LastName,
			FullName:        u.FullName,
			City:            u.City,
			IsActive:        u.IsActive,
			ReputationScore: u.ReputationScore,
		})
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, rows)
}

// listItem must be called with s.mu held.
func (s *Server) listItem(it types.Item) types.ItemListItem {
	row := types.ItemListItem{
		ID:             it.ID,
		Title:          it.Title,
		Condition:      it.Condition,
		EstimatedValue: it.EstimatedValue,
		Status:         string(it.Status),
		ViewCount:      it.ViewCount,
		InterestCount:  it.InterestCount,
		CreatedAt:      it.CreatedAt,
	}
	if acct, ok := s.data.accounts[it.OwnerID]; ok {
		row.OwnerUsername = acct.user.Username
		row.City = acct.user.City
	}
	for _, c := range s.data.categories {
		if c.ID == it.CategoryID {
			row.CategoryName = c.Name
		}
	}
	if len(it.Images) > 0 {
		url := it.Images[0].URL
		row.PrimaryImageURL = &url
	}
	return row
}

func titleOf(obj types.Object) string {
	title, _ := obj["title"].(string)
	return title
}
