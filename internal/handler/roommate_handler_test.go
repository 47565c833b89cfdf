package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"choreboard/internal/model"
	"choreboard/internal/repositories"
)

type fakeRoommateService struct {
	roommates []model.Roommate
	emails    map[string]bool
	deleted   []int64
}

func newFakeRoommateService() *fakeRoommateService {
	return &fakeRoommateService{emails: map[string]bool{}}
}

func (f *fakeRoommateService) Create(_ context.Context, rm *model.Roommate) (*model.Roommate, error) {
	if f.emails[rm.Email] {
		return nil, fmt.Errorf("insert roommate: %w", repositories.ErrConflict)
	}
	rm.ID = int64(len(f.roommates) + 1)
	f.emails[rm.Email] = true
	f.roommates = append(f.roommates, *rm)
	return rm, nil
}

func (f *fakeRoommateService) List(_ context.Context) ([]model.Roommate, error) {
	return append([]model.Roommate{}, f.roommates...), nil
}

func (f *fakeRoommateService) Update(_ context.Context, rm *model.Roommate) (*model.Roommate, error) {
	for i := range f.roommates {
		if f.roommates[i].ID == rm.ID {
			f.roommates[i] = *rm
			return rm, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeRoommateService) Delete(_ context.Context, id int64) (int64, error) {
	f.deleted = append(f.deleted, id)
	return 2, nil
}

func (f *fakeRoommateService) SetCacheClient(_ *redis.Client) {}

func TestRoommateHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newFakeRoommateService()
	h := NewRoommateHandler(svc, zap.NewNop())

	c, w := newTestContext(http.MethodPost, "/roommates", `{"name":"Ana","email":"ana@example.com"}`)
	h.CreateRoommate(c)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.Roommate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)

	t.Run("duplicate email", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/roommates", `{"name":"Other","email":"ana@example.com"}`)
		h.CreateRoommate(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "email")
	})

	t.Run("missing fields", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/roommates", `{"name":"NoEmail"}`)
		h.CreateRoommate(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"name and email are required"}`, w.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		for name, body := range map[string]string{
			"truncated":  `{"name":"Ana",`,
			"wrong type": `{"name":"Ana","email":42}`,
		} {
			c, w := newTestContext(http.MethodPost, "/roommates", body)
			h.CreateRoommate(c)
			assert.Equal(t, http.StatusBadRequest, w.Code, name)
			assert.Contains(t, w.Body.String(), "invalid request", name)
			assert.NotContains(t, w.Body.String(), "required", name)
		}

		c, w := newTestContext(http.MethodPut, "/roommates/1", `[1,2]`, gin.Param{Key: "id", Value: "1"})
		h.UpdateRoommate(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request")
	})

	t.Run("update", func(t *testing.T) {
		c, w := newTestContext(http.MethodPut, "/roommates/1", `{"name":"Ana B","email":"ana@example.com"}`, gin.Param{Key: "id", Value: "1"})
		h.UpdateRoommate(c)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Ana B", svc.roommates[0].Name)
	})

	t.Run("update unknown", func(t *testing.T) {
		c, w := newTestContext(http.MethodPut, "/roommates/7", `{"name":"X","email":"x@example.com"}`, gin.Param{Key: "id", Value: "7"})
		h.UpdateRoommate(c)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "roommate not found")
	})

	t.Run("list", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/roommates", "")
		h.ListRoommates(c)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Ana B","email":"ana@example.com"}]`, w.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		c, w := newTestContext(http.MethodDelete, "/roommates/1", "", gin.Param{Key: "id", Value: "1"})
		h.DeleteRoommate(c)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Roommate deleted successfully","tasks_unassigned":2}`, w.Body.String())
		assert.Equal(t, []int64{1}, svc.deleted)
	})
}
