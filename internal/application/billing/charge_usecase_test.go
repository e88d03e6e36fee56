package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-portal/internal/application/billing"
	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/charge"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository/repomock"
	"github.com/jhoicas/billing-portal/pkg/logger"
)

func fixedClock(day string) charge.Clock {
	now, _ := time.Parse(charge.DateLayout, day)
	return charge.Clock{Now: func() time.Time { return now.Add(15 * time.Hour) }, Location: time.UTC}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(charge.DateLayout, s)
	require.NoError(t, err)
	return d
}

func intPtr(n int) *int { return &n }

type chargeFixture struct {
	repo   *repomock.ChargeRepo
	txRepo *repomock.ChargeRepo
	tx     *repomock.TxRunner
	uc     *billing.ChargeUseCase
}

func newChargeFixture(today string) *chargeFixture {
	repo := &repomock.ChargeRepo{}
	txRepo := &repomock.ChargeRepo{}
	tx := &repomock.TxRunner{Charges: txRepo}
	return &chargeFixture{
		repo:   repo,
		txRepo: txRepo,
		tx:     tx,
		uc:     billing.NewChargeUseCase(repo, tx, fixedClock(today), logger.Nop()),
	}
}

// assignIDs simula el RETURNING id del INSERT.
func assignIDs(start int64) func(mock.Arguments) {
	next := start
	return func(args mock.Arguments) {
		c := args.Get(1).(*entity.Charge)
		c.ID = next
		next++
	}
}

func serviceFeeRequest() dto.CreateChargeRequest {
	return dto.CreateChargeRequest{
		CompanyID: 7,
		Title:     "Service Fee",
		Amount:    decimal.NewFromInt(300),
		DueDate:   "2026-01-01",
	}
}

func TestChargeUseCase_Create_TresCuotasEnUnaTransaccion(t *testing.T) {
	f := newChargeFixture("2025-12-15")
	f.txRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Charge")).
		Return(nil).Run(assignIDs(100)).Times(3)

	in := serviceFeeRequest()
	in.RecurringCount = intPtr(3)
	in.IntervalDays = intPtr(30)

	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.True(t, f.tx.Committed)
	assert.False(t, f.tx.RolledBack)
	wantDates := []string{"2026-01-01", "2026-01-31", "2026-03-02"}
	for i, c := range out {
		assert.Equal(t, int64(100+i), c.ID)
		assert.Equal(t, wantDates[i], c.DueDate)
		assert.Equal(t, "300.00", c.Amount)
		assert.Equal(t, entity.ChargeStatusPending, c.Status)
	}
	assert.Equal(t, "Service Fee (1/3)", out[0].Title)
	assert.Equal(t, "Service Fee (3/3)", out[2].Title)
	f.txRepo.AssertExpectations(t)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestChargeUseCase_Create_UnaCobranzaSinRecurrencia(t *testing.T) {
	f := newChargeFixture("2025-12-15")
	f.txRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(assignIDs(1)).Once()

	in := serviceFeeRequest()
	in.BoletoFile = "/uploads/boleto.pdf"
	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Service Fee", out[0].Title)
	assert.Equal(t, "2026-01-01", out[0].DueDate)
	require.NotNil(t, out[0].BoletoFile)
	assert.Equal(t, "/uploads/boleto.pdf", *out[0].BoletoFile)
	assert.Nil(t, out[0].PaymentMethod)
}

func TestChargeUseCase_Create_FallaIntermediaRevierteTodo(t *testing.T) {
	f := newChargeFixture("2025-12-15")
	f.txRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(assignIDs(1)).Once()
	f.txRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("conexión perdida")).Once()

	in := serviceFeeRequest()
	in.RecurringCount = intPtr(3)

	out, err := f.uc.Create(context.Background(), in)
	assert.Nil(t, out)
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.True(t, f.tx.RolledBack)
	assert.False(t, f.tx.Committed)
	f.txRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestChargeUseCase_Create_EmpresaInexistenteEsPersistencia(t *testing.T) {
	f := newChargeFixture("2025-12-15")
	fkErr := domain.PersistenceError("insert charge", errors.New("violates foreign key constraint"))
	f.txRepo.On("Create", mock.Anything, mock.Anything).Return(fkErr).Once()

	_, err := f.uc.Create(context.Background(), serviceFeeRequest())
	require.ErrorIs(t, err, domain.ErrPersistence)
}

func TestChargeUseCase_Create_ValidacionAntesDeEscribir(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*dto.CreateChargeRequest)
		field string
	}{
		{"cantidad fuera de rango", func(r *dto.CreateChargeRequest) { r.RecurringCount = intPtr(13) }, "recurringCount"},
		{"intervalo cero", func(r *dto.CreateChargeRequest) { r.RecurringCount = intPtr(2); r.IntervalDays = intPtr(0) }, "intervalDays"},
		{"fecha mal formada", func(r *dto.CreateChargeRequest) { r.DueDate = "01/01/2026" }, "dueDate"},
		{"sin fecha", func(r *dto.CreateChargeRequest) { r.DueDate = "" }, "dueDate"},
		{"fecha de cuota mal formada", func(r *dto.CreateChargeRequest) {
			r.RecurringCount = intPtr(2)
			r.Installments = []dto.InstallmentRequest{{DueDate: "2026-13-01"}}
		}, "installments[0].dueDate"},
		{"sin empresa", func(r *dto.CreateChargeRequest) { r.CompanyID = 0 }, "companyId"},
		{"monto negativo", func(r *dto.CreateChargeRequest) { r.Amount = decimal.NewFromInt(-1) }, "amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newChargeFixture("2025-12-15")
			in := serviceFeeRequest()
			tt.mod(&in)

			_, err := f.uc.Create(context.Background(), in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.False(t, f.tx.Committed)
			f.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestChargeUseCase_Pay_RegistraPago(t *testing.T) {
	f := newChargeFixture("2026-01-10")
	paidOn := mustDate(t, "2026-01-05")
	existing := &entity.Charge{ID: 42, CompanyID: 7, Title: "Service Fee", Amount: decimal.NewFromInt(300),
		DueDate: mustDate(t, "2026-01-01"), Status: entity.ChargeStatusPending}
	updated := *existing
	updated.Status = entity.ChargeStatusPaid
	updated.PaymentMethod = "Pix"
	updated.PaymentDate = &paidOn

	f.repo.On("GetByID", mock.Anything, int64(42)).Return(existing, nil)
	f.repo.On("MarkPaid", mock.Anything, int64(42), "Pix", paidOn).Return(&updated, nil)

	out, err := f.uc.Pay(context.Background(), 42, dto.PayChargeRequest{PaymentMethod: " Pix ", PaymentDate: "2026-01-05"})
	require.NoError(t, err)
	assert.Equal(t, entity.ChargeStatusPaid, out.Status)
	require.NotNil(t, out.PaymentMethod)
	assert.Equal(t, "Pix", *out.PaymentMethod)
	require.NotNil(t, out.PaymentDate)
	assert.Equal(t, "2026-01-05", *out.PaymentDate)
	f.repo.AssertExpectations(t)
}

func TestChargeUseCase_Pay_InexistenteEsNotFound(t *testing.T) {
	f := newChargeFixture("2026-01-10")
	f.repo.On("GetByID", mock.Anything, int64(999)).Return(nil, nil)

	out, err := f.uc.Pay(context.Background(), 999, dto.PayChargeRequest{PaymentMethod: "Pix", PaymentDate: "2026-01-05"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChargeUseCase_Pay_RepagoSobrescribe(t *testing.T) {
	f := newChargeFixture("2026-01-10")
	first := mustDate(t, "2026-01-02")
	second := mustDate(t, "2026-01-08")
	existing := &entity.Charge{ID: 5, Status: entity.ChargeStatusPaid, PaymentMethod: "Boleto", PaymentDate: &first,
		DueDate: mustDate(t, "2026-01-01"), Amount: decimal.NewFromInt(10)}
	updated := *existing
	updated.PaymentMethod = "Pix"
	updated.PaymentDate = &second

	f.repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	f.repo.On("MarkPaid", mock.Anything, int64(5), "Pix", second).Return(&updated, nil).Once()

	out, err := f.uc.Pay(context.Background(), 5, dto.PayChargeRequest{PaymentMethod: "Pix", PaymentDate: "2026-01-08"})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-08", *out.PaymentDate)
	f.repo.AssertExpectations(t)
}

func TestChargeUseCase_Pay_ValidaEntrada(t *testing.T) {
	f := newChargeFixture("2026-01-10")
	_, err := f.uc.Pay(context.Background(), 1, dto.PayChargeRequest{PaymentMethod: "   ", PaymentDate: "2026-01-05"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "paymentMethod", ve.Field)

	_, err = f.uc.Pay(context.Background(), 1, dto.PayChargeRequest{PaymentMethod: "Pix", PaymentDate: "ayer"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "paymentDate", ve.Field)
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestChargeUseCase_List_DerivaVencidas(t *testing.T) {
	f := newChargeFixture("2026-02-01")
	company := entity.Company{ID: 7, Name: "Tech Solutions Ltda"}
	f.repo.On("List", mock.Anything, mock.Anything).Return([]*entity.ChargeWithCompany{
		{Charge: entity.Charge{ID: 1, CompanyID: 7, Status: entity.ChargeStatusPending, DueDate: mustDate(t, "2026-01-15"), Amount: decimal.NewFromInt(1)}, Company: company},
		{Charge: entity.Charge{ID: 2, CompanyID: 7, Status: entity.ChargeStatusPending, DueDate: mustDate(t, "2026-02-01"), Amount: decimal.NewFromInt(1)}, Company: company},
	}, nil)

	scope := int64(7)
	out, err := f.uc.List(context.Background(), &scope)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, entity.ChargeStatusOverdue, out[0].Status)
	assert.Equal(t, entity.ChargeStatusPending, out[1].Status)
	require.NotNil(t, out[0].Company)
	assert.Equal(t, "Tech Solutions Ltda", out[0].Company.Name)
	f.repo.AssertCalled(t, "List", mock.Anything, &scope)
}

func TestChargeUseCase_Get_FueraDeLaEmpresaEsNotFound(t *testing.T) {
	f := newChargeFixture("2026-02-01")
	f.repo.On("GetByID", mock.Anything, int64(3)).Return(&entity.Charge{ID: 3, CompanyID: 8}, nil)

	scope := int64(7)
	_, err := f.uc.Get(context.Background(), 3, &scope)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChargeUseCase_Update_PendienteBorraDatosDePago(t *testing.T) {
	f := newChargeFixture("2026-01-10")
	paidOn := mustDate(t, "2026-01-05")
	f.repo.On("GetByID", mock.Anything, int64(9)).Return(&entity.Charge{
		ID: 9, CompanyID: 7, Title: "Licença", Amount: decimal.NewFromInt(50), DueDate: mustDate(t, "2026-01-20"),
		Status: entity.ChargeStatusPaid, PaymentMethod: "Pix", PaymentDate: &paidOn,
	}, nil)
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(c *entity.Charge) bool {
		return c.Status == entity.ChargeStatusPending && c.PaymentMethod == "" && c.PaymentDate == nil
	})).Return(&entity.Charge{
		ID: 9, CompanyID: 7, Title: "Licença", Amount: decimal.NewFromInt(50), DueDate: mustDate(t, "2026-01-20"),
		Status: entity.ChargeStatusPending,
	}, nil)

	pending := entity.ChargeStatusPending
	out, err := f.uc.Update(context.Background(), 9, dto.UpdateChargeRequest{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, entity.ChargeStatusPending, out.Status)
	assert.Nil(t, out.PaymentMethod)
	f.repo.AssertExpectations(t)
}

func TestChargeUseCase_Update_PagaSinDatosEsValidacion(t *testing.T) {
	f := newChargeFixture("2026-01-10")
	f.repo.On("GetByID", mock.Anything, int64(9)).Return(&entity.Charge{
		ID: 9, CompanyID: 7, Title: "Licença", Amount: decimal.NewFromInt(50), Status: entity.ChargeStatusPending,
	}, nil)

	paid := entity.ChargeStatusPaid
	_, err := f.uc.Update(context.Background(), 9, dto.UpdateChargeRequest{Status: &paid})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "paymentMethod", ve.Field)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChargeUseCase_Update_MontoInvalido(t *testing.T) {
	for _, raw := range []string{"0.004", "100000000", "-5"} {
		t.Run(raw, func(t *testing.T) {
			f := newChargeFixture("2026-01-10")
			f.repo.On("GetByID", mock.Anything, int64(9)).Return(&entity.Charge{
				ID: 9, CompanyID: 7, Title: "Licença", Amount: decimal.NewFromInt(50), Status: entity.ChargeStatusPending,
			}, nil)

			amount := decimal.RequireFromString(raw)
			_, err := f.uc.Update(context.Background(), 9, dto.UpdateChargeRequest{Amount: &amount})
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "amount", ve.Field)
			f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestChargeUseCase_Update_MontoSeRedondea(t *testing.T) {
	f := newChargeFixture("2026-01-10")
	f.repo.On("GetByID", mock.Anything, int64(9)).Return(&entity.Charge{
		ID: 9, CompanyID: 7, Title: "Licença", Amount: decimal.NewFromInt(50), Status: entity.ChargeStatusPending,
	}, nil)
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(c *entity.Charge) bool {
		return c.Amount.StringFixed(2) == "10.01"
	})).Return(&entity.Charge{
		ID: 9, CompanyID: 7, Title: "Licença", Amount: decimal.RequireFromString("10.01"), Status: entity.ChargeStatusPending,
	}, nil)

	amount := decimal.RequireFromString("10.005")
	out, err := f.uc.Update(context.Background(), 9, dto.UpdateChargeRequest{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, "10.01", out.Amount)
	f.repo.AssertExpectations(t)
}

func TestChargeUseCase_Delete(t *testing.T) {
	f := newChargeFixture("2026-01-10")
	f.repo.On("Delete", mock.Anything, int64(1)).Return(true, nil)
	f.repo.On("Delete", mock.Anything, int64(2)).Return(false, nil)

	assert.NoError(t, f.uc.Delete(context.Background(), 1))
	assert.ErrorIs(t, f.uc.Delete(context.Background(), 2), domain.ErrNotFound)
}
