package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CASADINKE/eiffagerh-sub000/internal/payroll"
	payrollerrors "github.com/CASADINKE/eiffagerh-sub000/internal/payroll/errors"

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

type fakePayslipService struct {
	createFn        func(ctx context.Context, companyID, actorID string, req payroll.CreatePayslipRequest) (payroll.PayslipResponse, error)
	getAllFn        func(ctx context.Context, companyID string, filter payroll.GetPayslipsFilterRequest) ([]payroll.PayslipResponse, error)
	getByEmployeeFn func(ctx context.Context, companyID, employeeID string) ([]payroll.PayslipResponse, error)
	getByIDFn       func(ctx context.Context, companyID, id string) (payroll.PayslipResponse, error)
	updateFn        func(ctx context.Context, companyID, actorID, id string, req payroll.UpdatePayslipRequest) (payroll.PayslipResponse, error)
	transitionFn    func(ctx context.Context, companyID, actorID, id string, req payroll.TransitionPayslipRequest) (payroll.PayslipResponse, error)
	validateFn      func(ctx context.Context, companyID, actorID, id string) (payroll.PayslipResponse, error)
	markPaidFn      func(ctx context.Context, companyID, actorID, id string, req payroll.MarkPaidRequest) (payroll.PayslipResponse, error)
	deleteFn        func(ctx context.Context, companyID, id string) error
	summaryFn       func(ctx context.Context, companyID string) (payroll.PayslipSummaryResponse, error)
	generateFn      func(ctx context.Context, companyID, id string) (payroll.PayslipResponse, error)
}

func (f *fakePayslipService) Create(ctx context.Context, companyID, actorID string, req payroll.CreatePayslipRequest) (payroll.PayslipResponse, error) {
	return f.createFn(ctx, companyID, actorID, req)
}

func (f *fakePayslipService) GetAll(ctx context.Context, companyID string, filter payroll.GetPayslipsFilterRequest) ([]payroll.PayslipResponse, error) {
	return f.getAllFn(ctx, companyID, filter)
}

func (f *fakePayslipService) GetByEmployee(ctx context.Context, companyID, employeeID string) ([]payroll.PayslipResponse, error) {
	return f.getByEmployeeFn(ctx, companyID, employeeID)
}

func (f *fakePayslipService) GetByID(ctx context.Context, companyID, id string) (payroll.PayslipResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}

func (f *fakePayslipService) Update(ctx context.Context, companyID, actorID, id string, req payroll.UpdatePayslipRequest) (payroll.PayslipResponse, error) {
	return f.updateFn(ctx, companyID, actorID, id, req)
}

func (f *fakePayslipService) Transition(ctx context.Context, companyID, actorID, id string, req payroll.TransitionPayslipRequest) (payroll.PayslipResponse, error) {
	return f.transitionFn(ctx, companyID, actorID, id, req)
}

func (f *fakePayslipService) Validate(ctx context.Context, companyID, actorID, id string) (payroll.PayslipResponse, error) {
	return f.validateFn(ctx, companyID, actorID, id)
}

func (f *fakePayslipService) MarkPaid(ctx context.Context, companyID, actorID, id string, req payroll.MarkPaidRequest) (payroll.PayslipResponse, error) {
	return f.markPaidFn(ctx, companyID, actorID, id, req)
}

func (f *fakePayslipService) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}

func (f *fakePayslipService) Summary(ctx context.Context, companyID string) (payroll.PayslipSummaryResponse, error) {
	return f.summaryFn(ctx, companyID)
}

func (f *fakePayslipService) GenerateDocument(ctx context.Context, companyID, id string) (payroll.PayslipResponse, error) {
	return f.generateFn(ctx, companyID, id)
}

func TestPayslipHandler_Create(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayslipService{
		createFn: func(ctx context.Context, cid, aid string, req payroll.CreatePayslipRequest) (payroll.PayslipResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, actorID, aid)
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, "2024-05", req.Period)
			return payroll.PayslipResponse{
				ID:         uuid.New().String(),
				CompanyID:  cid,
				EmployeeID: req.EmployeeID,
				Status:     payroll.StatusPending,
				NetPayable: 359909,
				CreatedBy:  aid,
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","period":"2024-05","base_salary":300000,"over_salary":50000,"displacement_allowance":45000,"transport_allowance":30000,"income_tax":42591,"pension_contribution":22100,"minimum_levy":400}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", companyID)
	c.Set("employee_id", actorID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayslipHandler_Create_BindError(t *testing.T) {
	svc := &fakePayslipService{}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(`{"period":"2024-05"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPayslipHandler_Transition_InvalidState(t *testing.T) {
	svc := &fakePayslipService{
		transitionFn: func(ctx context.Context, companyID, actorID, id string, req payroll.TransitionPayslipRequest) (payroll.PayslipResponse, error) {
			return payroll.PayslipResponse{}, payrollerrors.InvalidTransition(payroll.StatusPaid, req.Status)
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"status":"VALIDATED"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/123/transition", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.Transition(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestPayslipHandler_MarkPaid_RequiresMethod(t *testing.T) {
	svc := &fakePayslipService{}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/123/mark-paid", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.MarkPaid(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPayslipHandler_GetAll_Pagination(t *testing.T) {
	companyID := uuid.New().String()

	all := make([]payroll.PayslipResponse, 0, 15)
	for i := 0; i < 15; i++ {
		all = append(all, payroll.PayslipResponse{ID: uuid.New().String(), Status: payroll.StatusPending})
	}

	svc := &fakePayslipService{
		getAllFn: func(ctx context.Context, cid string, filter payroll.GetPayslipsFilterRequest) ([]payroll.PayslipResponse, error) {
			return all, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payslips?page=2&page_size=10", nil)
	c.Set("company_id", companyID)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var page []payroll.PayslipResponse
	assert.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page, 5)
}

func TestPayslipHandler_DownloadDocument(t *testing.T) {
	companyID := uuid.New().String()
	payslipID := uuid.New().String()

	t.Run("not generated", func(t *testing.T) {
		svc := &fakePayslipService{
			getByIDFn: func(ctx context.Context, cid, id string) (payroll.PayslipResponse, error) {
				return payroll.PayslipResponse{ID: id, Status: payroll.StatusValidated}, nil
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/payslips/"+payslipID+"/document/download", nil)
		c.Params = []gin.Param{{Key: "id", Value: payslipID}}
		c.Set("company_id", companyID)

		h.DownloadDocument(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("redirects when generated", func(t *testing.T) {
		url := "/files/payslips/" + payslipID + ".pdf"
		svc := &fakePayslipService{
			getByIDFn: func(ctx context.Context, cid, id string) (payroll.PayslipResponse, error) {
				return payroll.PayslipResponse{ID: id, Status: payroll.StatusPaid, DocumentURL: &url}, nil
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/payslips/"+payslipID+"/document/download", nil)
		c.Params = []gin.Param{{Key: "id", Value: payslipID}}
		c.Set("company_id", companyID)

		h.DownloadDocument(c)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, url, w.Header().Get("Location"))
	})
}

func TestPayslipHandler_Delete_PaidForbidden(t *testing.T) {
	svc := &fakePayslipService{
		deleteFn: func(ctx context.Context, companyID, id string) error {
			return payrollerrors.ErrDeletePaidForbidden
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodDelete, "/payslips/123", nil)
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("company_id", uuid.New().String())

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}
