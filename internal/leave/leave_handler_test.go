package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CASADINKE/eiffagerh-sub000/internal/leave"
	leaveerrors "github.com/CASADINKE/eiffagerh-sub000/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	createFn  func(ctx context.Context, companyID, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	getAllFn  func(ctx context.Context, companyID string, filter leave.GetLeavesFilterRequest) ([]leave.LeaveResponse, error)
	getByIDFn func(ctx context.Context, companyID, id string) (leave.LeaveResponse, error)
	decideFn  func(ctx context.Context, companyID, actorID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error)
	approveFn func(ctx context.Context, companyID, actorID, id string) (leave.LeaveResponse, error)
	rejectFn  func(ctx context.Context, companyID, actorID, id, reason string) (leave.LeaveResponse, error)
	deleteFn  func(ctx context.Context, companyID, id string) error
	summaryFn func(ctx context.Context, companyID string) (leave.LeaveSummaryResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, companyID, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, companyID, actorID, req)
}

func (f *fakeLeaveService) GetAll(ctx context.Context, companyID string, filter leave.GetLeavesFilterRequest) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx, companyID, filter)
}

func (f *fakeLeaveService) GetByID(ctx context.Context, companyID, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}

func (f *fakeLeaveService) Decide(ctx context.Context, companyID, actorID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, companyID, actorID, id, req)
}

func (f *fakeLeaveService) Approve(ctx context.Context, companyID, actorID, id string) (leave.LeaveResponse, error) {
	return f.approveFn(ctx, companyID, actorID, id)
}

func (f *fakeLeaveService) Reject(ctx context.Context, companyID, actorID, id, reason string) (leave.LeaveResponse, error) {
	return f.rejectFn(ctx, companyID, actorID, id, reason)
}

func (f *fakeLeaveService) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}

func (f *fakeLeaveService) Summary(ctx context.Context, companyID string) (leave.LeaveSummaryResponse, error) {
	return f.summaryFn(ctx, companyID)
}

func TestLeaveHandler_Create(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakeLeaveService{
		createFn: func(ctx context.Context, cid, aid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, actorID, aid)
			assert.Equal(t, leave.TypePaid, req.LeaveType)
			return leave.LeaveResponse{
				ID:         uuid.New().String(),
				EmployeeID: req.EmployeeID,
				LeaveType:  req.LeaveType,
				TotalDays:  5,
				Status:     leave.StatusPending,
			}, nil
		},
	}

	h := leave.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","leave_type":"PAID","start_date":"2024-06-10","end_date":"2024-06-14","reason":"vacances"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", companyID)
	c.Set("employee_id", actorID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestLeaveHandler_Create_MissingDates(t *testing.T) {
	svc := &fakeLeaveService{}

	h := leave.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + uuid.New().String() + `","leave_type":"PAID"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestLeaveHandler_Decide_AlreadyDecided(t *testing.T) {
	svc := &fakeLeaveService{
		decideFn: func(ctx context.Context, companyID, actorID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrAlreadyDecided
		},
	}

	h := leave.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/leaves/123/decide", strings.NewReader(`{"status":"APPROVED"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.Decide(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestLeaveHandler_Reject_RequiresReason(t *testing.T) {
	svc := &fakeLeaveService{}

	h := leave.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/leaves/123/reject", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.Reject(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestLeaveHandler_GetAll_Pagination(t *testing.T) {
	all := make([]leave.LeaveResponse, 0, 12)
	for i := 0; i < 12; i++ {
		all = append(all, leave.LeaveResponse{ID: uuid.New().String(), Status: leave.StatusPending})
	}

	svc := &fakeLeaveService{
		getAllFn: func(ctx context.Context, companyID string, filter leave.GetLeavesFilterRequest) ([]leave.LeaveResponse, error) {
			return all, nil
		},
	}

	h := leave.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/leaves?page=2&page_size=10", nil)
	c.Set("company_id", uuid.New().String())

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var page []leave.LeaveResponse
	assert.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page, 2)
}

func TestLeaveHandler_Delete_PendingOnly(t *testing.T) {
	svc := &fakeLeaveService{
		deleteFn: func(ctx context.Context, companyID, id string) error {
			return leaveerrors.ErrDeletePendingOnly
		},
	}

	h := leave.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodDelete, "/leaves/123", nil)
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("company_id", uuid.New().String())

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}
