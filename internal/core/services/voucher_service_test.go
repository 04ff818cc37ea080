package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/core/services"
	"github.com/fundbooks/fundbooks/internal/dto"
)

type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockChartRepo   *MockChartRepository
	service         portssvc.VoucherSvcFacade
	ctx             context.Context

	projectID    string
	cashLedger   domain.GeneralLedger
	incomeLedger domain.GeneralLedger
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockChartRepo = new(MockChartRepository)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockChartRepo)
	suite.ctx = context.Background()

	suite.projectID = uuid.NewString()
	suite.cashLedger = domain.GeneralLedger{
		LedgerID:   uuid.NewString(),
		ProjectID:  suite.projectID,
		LedgerName: "Cash in Hand",
	}
	suite.incomeLedger = domain.GeneralLedger{
		LedgerID:   uuid.NewString(),
		ProjectID:  suite.projectID,
		LedgerName: "Grant Income",
	}
}

// ledgerMap returns the chart lookup result covering both fixture ledgers.
func (suite *VoucherServiceTestSuite) ledgerMap() map[string]domain.GeneralLedger {
	return map[string]domain.GeneralLedger{
		suite.cashLedger.LedgerID:   suite.cashLedger,
		suite.incomeLedger.LedgerID: suite.incomeLedger,
	}
}

// balancedRequest is a valid two-entry voucher: debit cash, credit income.
func (suite *VoucherServiceTestSuite) balancedRequest(amount string) dto.CreateVoucherRequest {
	return dto.CreateVoucherRequest{
		Date:      domain.NewDate(2025, 4, 15),
		Narration: "Grant received",
		Entries: []dto.VoucherEntryRequest{
			{LedgerID: suite.cashLedger.LedgerID, DebitAmount: decimal.RequireFromString(amount)},
			{LedgerID: suite.incomeLedger.LedgerID, CreditAmount: decimal.RequireFromString(amount)},
		},
	}
}

func (suite *VoucherServiceTestSuite) TestPostVoucherSuccess() {
	req := suite.balancedRequest("500.00")

	suite.mockChartRepo.On("FindGeneralLedgersByIDs", suite.ctx, suite.projectID, mock.Anything).Return(suite.ledgerMap(), nil).Once()
	suite.mockVoucherRepo.On("MaxVoucherNo", suite.ctx, suite.projectID).Return(int64(41), nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", suite.ctx, mock.MatchedBy(func(v domain.JournalVoucher) bool {
		return v.VoucherNo == 42 &&
			v.ProjectID == suite.projectID &&
			v.IsBalanced() &&
			len(v.Entries) == 2 &&
			v.Entries[0].SerialNo == 1 &&
			v.Entries[1].SerialNo == 2
	})).Return(nil).Once()

	voucher, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.Equal(int64(42), voucher.VoucherNo)
	suite.Equal(domain.Money(50000), voucher.Entries[0].DebitAmount)
	suite.Equal(domain.Money(50000), voucher.Entries[1].CreditAmount)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockChartRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestPostVoucherUnbalanced() {
	req := suite.balancedRequest("500.00")
	req.Entries[1].CreditAmount = decimal.RequireFromString("400.00")

	suite.mockChartRepo.On("FindGeneralLedgersByIDs", suite.ctx, suite.projectID, mock.Anything).Return(suite.ledgerMap(), nil).Once()

	voucher, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "500.00")
	suite.Contains(err.Error(), "400.00")
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestPostVoucherTooFewEntries() {
	req := suite.balancedRequest("500.00")
	req.Entries = req.Entries[:1]

	_, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), services.ErrVoucherMinEntries.Error())
}

func (suite *VoucherServiceTestSuite) TestPostVoucherMissingNarration() {
	req := suite.balancedRequest("500.00")
	req.Narration = ""

	_, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), services.ErrNarrationMissing.Error())
}

func (suite *VoucherServiceTestSuite) TestPostVoucherMissingDate() {
	req := suite.balancedRequest("500.00")
	req.Date = domain.Date{}

	_, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VoucherServiceTestSuite) TestPostVoucherEntryWithBothSides() {
	req := suite.balancedRequest("500.00")
	req.Entries[0].CreditAmount = decimal.RequireFromString("500.00")

	_, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryAmountInvalid)
}

func (suite *VoucherServiceTestSuite) TestPostVoucherEntryWithNeitherSide() {
	req := suite.balancedRequest("500.00")
	req.Entries[0].DebitAmount = decimal.Zero

	_, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryAmountInvalid)
}

func (suite *VoucherServiceTestSuite) TestPostVoucherNegativeAmount() {
	req := suite.balancedRequest("500.00")
	req.Entries[0].DebitAmount = decimal.RequireFromString("-500.00")

	_, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "negative")
}

func (suite *VoucherServiceTestSuite) TestPostVoucherSubCentAmount() {
	req := suite.balancedRequest("500.00")
	req.Entries[0].DebitAmount = decimal.RequireFromString("500.005")

	_, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "decimal places")
}

func (suite *VoucherServiceTestSuite) TestPostVoucherUnknownLedger() {
	req := suite.balancedRequest("500.00")

	// Only the cash ledger resolves.
	partial := map[string]domain.GeneralLedger{suite.cashLedger.LedgerID: suite.cashLedger}
	suite.mockChartRepo.On("FindGeneralLedgersByIDs", suite.ctx, suite.projectID, mock.Anything).Return(partial, nil).Once()

	_, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), suite.incomeLedger.LedgerID)
}

func (suite *VoucherServiceTestSuite) TestPostVoucherSubLedgerWrongParent() {
	subLedgerID := uuid.NewString()
	req := suite.balancedRequest("500.00")
	req.Entries[0].SubLedgerID = &subLedgerID

	// The sub-ledger exists but belongs to the income ledger, not the cash
	// ledger named on the entry.
	subs := map[string]domain.SubLedger{
		subLedgerID: {SubLedgerID: subLedgerID, LedgerID: suite.incomeLedger.LedgerID},
	}
	suite.mockChartRepo.On("FindGeneralLedgersByIDs", suite.ctx, suite.projectID, mock.Anything).Return(suite.ledgerMap(), nil).Once()
	suite.mockChartRepo.On("FindSubLedgersByIDs", suite.ctx, suite.projectID, []string{subLedgerID}).Return(subs, nil).Once()

	_, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "does not belong to")
}

func (suite *VoucherServiceTestSuite) TestPostVoucherRetriesAfterNumberRace() {
	req := suite.balancedRequest("250.00")

	suite.mockChartRepo.On("FindGeneralLedgersByIDs", suite.ctx, suite.projectID, mock.Anything).Return(suite.ledgerMap(), nil).Once()

	// Another writer takes voucher 6 between our read and our insert; the
	// second attempt lands on 7.
	suite.mockVoucherRepo.On("MaxVoucherNo", suite.ctx, suite.projectID).Return(int64(5), nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", suite.ctx, mock.MatchedBy(func(v domain.JournalVoucher) bool {
		return v.VoucherNo == 6
	})).Return(apperrors.ErrDuplicate).Once()
	suite.mockVoucherRepo.On("MaxVoucherNo", suite.ctx, suite.projectID).Return(int64(6), nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", suite.ctx, mock.MatchedBy(func(v domain.JournalVoucher) bool {
		return v.VoucherNo == 7
	})).Return(nil).Once()

	voucher, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().NoError(err)
	suite.Equal(int64(7), voucher.VoucherNo)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestPostVoucherNumberRetriesExhausted() {
	req := suite.balancedRequest("250.00")

	suite.mockChartRepo.On("FindGeneralLedgersByIDs", suite.ctx, suite.projectID, mock.Anything).Return(suite.ledgerMap(), nil).Once()
	suite.mockVoucherRepo.On("MaxVoucherNo", suite.ctx, suite.projectID).Return(int64(5), nil).Times(3)
	suite.mockVoucherRepo.On("SaveVoucher", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Times(3)

	voucher, err := suite.service.PostVoucher(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestGetVoucherByNoSuccess() {
	expected := &domain.JournalVoucher{VoucherID: uuid.NewString(), ProjectID: suite.projectID, VoucherNo: 3}
	suite.mockVoucherRepo.On("FindVoucherByNo", suite.ctx, suite.projectID, int64(3)).Return(expected, nil).Once()

	voucher, err := suite.service.GetVoucherByNo(suite.ctx, suite.projectID, 3)

	suite.Require().NoError(err)
	suite.Equal(expected, voucher)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestGetVoucherByNoNotFound() {
	suite.mockVoucherRepo.On("FindVoucherByNo", suite.ctx, suite.projectID, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	voucher, err := suite.service.GetVoucherByNo(suite.ctx, suite.projectID, 99)

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *VoucherServiceTestSuite) TestListVouchersDefaultLimit() {
	vouchers := []domain.JournalVoucher{{VoucherID: uuid.NewString(), VoucherNo: 1}}
	suite.mockVoucherRepo.On("ListVouchersByProject", suite.ctx, suite.projectID, 20, (*string)(nil)).Return(vouchers, nil, nil).Once()

	resp, err := suite.service.ListVouchers(suite.ctx, suite.projectID, dto.ListVouchersParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Vouchers, 1)
	suite.Nil(resp.NextToken)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}

// --- Concurrent numbering ---

// memVoucherRepo is an in-memory voucher store enforcing the unique
// (project, voucherNo) constraint, standing in for the database in the
// concurrency test below.
type memVoucherRepo struct {
	mu       sync.Mutex
	vouchers map[int64]domain.JournalVoucher
}

func newMemVoucherRepo() *memVoucherRepo {
	return &memVoucherRepo{vouchers: make(map[int64]domain.JournalVoucher)}
}

func (r *memVoucherRepo) SaveVoucher(_ context.Context, voucher domain.JournalVoucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.vouchers[voucher.VoucherNo]; taken {
		return fmt.Errorf("%w: voucher number %d", apperrors.ErrDuplicate, voucher.VoucherNo)
	}
	r.vouchers[voucher.VoucherNo] = voucher
	return nil
}

func (r *memVoucherRepo) MaxVoucherNo(_ context.Context, _ string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for no := range r.vouchers {
		if no > max {
			max = no
		}
	}
	return max, nil
}

func (r *memVoucherRepo) FindVoucherByNo(_ context.Context, _ string, voucherNo int64) (*domain.JournalVoucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	voucher, ok := r.vouchers[voucherNo]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &voucher, nil
}

func (r *memVoucherRepo) ListVouchersByProject(_ context.Context, _ string, _ int, _ *string) ([]domain.JournalVoucher, *string, error) {
	return nil, nil, nil
}

func (r *memVoucherRepo) ListPostedEntries(_ context.Context, _ string, _ portsrepo.EntryFilter) ([]domain.PostedEntry, error) {
	return nil, nil
}

var _ portsrepo.VoucherRepositoryFacade = (*memVoucherRepo)(nil)

func TestPostVoucherConcurrentNumbering(t *testing.T) {
	const posters = 50

	projectID := uuid.NewString()
	cash := domain.GeneralLedger{LedgerID: uuid.NewString(), ProjectID: projectID}
	income := domain.GeneralLedger{LedgerID: uuid.NewString(), ProjectID: projectID}
	ledgers := map[string]domain.GeneralLedger{cash.LedgerID: cash, income.LedgerID: income}

	chartRepo := new(MockChartRepository)
	chartRepo.On("FindGeneralLedgersByIDs", mock.Anything, projectID, mock.Anything).Return(ledgers, nil)

	repo := newMemVoucherRepo()
	service := services.NewVoucherService(repo, chartRepo)

	req := dto.CreateVoucherRequest{
		Date:      domain.NewDate(2025, 4, 15),
		Narration: "Concurrent posting",
		Entries: []dto.VoucherEntryRequest{
			{LedgerID: cash.LedgerID, DebitAmount: decimal.RequireFromString("10.00")},
			{LedgerID: income.LedgerID, CreditAmount: decimal.RequireFromString("10.00")},
		},
	}

	var wg sync.WaitGroup
	errs := make(chan error, posters)
	for i := 0; i < posters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.PostVoucher(context.Background(), projectID, req)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent PostVoucher failed: %v", err)
		}
	}

	// Voucher numbers must come out unique and gapless: exactly 1..N.
	for no := int64(1); no <= posters; no++ {
		if _, ok := repo.vouchers[no]; !ok {
			t.Fatalf("voucher number %d missing from sequence", no)
		}
	}
	if len(repo.vouchers) != posters {
		t.Fatalf("expected %d vouchers, got %d", posters, len(repo.vouchers))
	}
}
