package services

import (
	"errors"

	"sportsclub_backend/internal/models"
	"sportsclub_backend/internal/repositories"
)

// errUnexpectedCall flags a repository method invoked by a test that did not
// override it.
var errUnexpectedCall = errors.New("unexpected repository call")

// Embeddable stubs. Tests embed one and override only the methods the code
// under test should reach.

type PaymentRepositoryStub struct{}

func (PaymentRepositoryStub) CreatePayment(executor repositories.SQLExecutor, payment *models.Payment) (int64, error) {
	return 0, errUnexpectedCall
}

func (PaymentRepositoryStub) GetPaymentByID(id int64) (*models.Payment, error) {
	return nil, errUnexpectedCall
}

func (PaymentRepositoryStub) GetPaymentsByMember(memberID int64) ([]models.Payment, error) {
	return nil, errUnexpectedCall
}

func (PaymentRepositoryStub) GetAllPayments() ([]models.Payment, error) {
	return nil, errUnexpectedCall
}

func (PaymentRepositoryStub) MarkPaymentPaid(executor repositories.SQLExecutor, id int64, paymentDate string) error {
	return errUnexpectedCall
}

func (PaymentRepositoryStub) GetPaymentsByBulkRef(bulkRef string) ([]models.Payment, error) {
	return nil, errUnexpectedCall
}

type MemberRepositoryStub struct{}

func (MemberRepositoryStub) CreateMember(executor repositories.SQLExecutor, member *models.Member) (int64, error) {
	return 0, errUnexpectedCall
}

func (MemberRepositoryStub) GetMemberByID(id int64) (*models.Member, error) {
	return nil, errUnexpectedCall
}

func (MemberRepositoryStub) GetMembers(page, pageSize int, searchTerm *string) ([]models.Member, int, error) {
	return nil, 0, errUnexpectedCall
}

func (MemberRepositoryStub) UpdateMember(executor repositories.SQLExecutor, member *models.Member) error {
	return errUnexpectedCall
}

func (MemberRepositoryStub) DeleteMember(executor repositories.SQLExecutor, id int64) error {
	return errUnexpectedCall
}

type ExpenditureRepositoryStub struct{}

func (ExpenditureRepositoryStub) CreateExpenditure(executor repositories.SQLExecutor, exp *models.Expenditure) (int64, error) {
	return 0, errUnexpectedCall
}

func (ExpenditureRepositoryStub) GetExpenditureByID(id int64) (*models.Expenditure, error) {
	return nil, errUnexpectedCall
}

func (ExpenditureRepositoryStub) GetExpenditures() ([]models.Expenditure, error) {
	return nil, errUnexpectedCall
}

func (ExpenditureRepositoryStub) UpdateExpenditure(executor repositories.SQLExecutor, exp *models.Expenditure) error {
	return errUnexpectedCall
}

func (ExpenditureRepositoryStub) DeleteExpenditure(executor repositories.SQLExecutor, id int64) error {
	return errUnexpectedCall
}

type FacilityRepositoryStub struct{}

func (FacilityRepositoryStub) GetFacilities() ([]models.Facility, error) {
	return nil, errUnexpectedCall
}

func (FacilityRepositoryStub) GetFacilityByName(name string) (*models.Facility, error) {
	return nil, errUnexpectedCall
}

type AuthRepositoryStub struct{}

func (AuthRepositoryStub) CreateUser(executor repositories.SQLExecutor, user *models.User) (int64, error) {
	return 0, errUnexpectedCall
}

func (AuthRepositoryStub) GetUserByID(id int64) (*models.User, error) {
	return nil, errUnexpectedCall
}

func (AuthRepositoryStub) GetUserByUsername(username string) (*models.User, error) {
	return nil, errUnexpectedCall
}

func (AuthRepositoryStub) GetUserByEmail(email string) (*models.User, error) {
	return nil, errUnexpectedCall
}
