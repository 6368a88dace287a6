package fakebackend

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenloop/greenloop-go/pkg/enums"
	"github.com/greenloop/greenloop-go/pkg/types"
)

// Seeded credentials.
const (
	AdminUserID   = "u-1"
	AdminEmail    = "ana@greenloop.test"
	AdminPassword = "secreto123"

	MemberUserID   = "u-2"
	MemberEmail    = "luis@greenloop.test"
	MemberPassword = "reciclar456"

	CompanyID       = "co-1"
	CompanyEmail    = "donaciones@empresa.test"
	CompanyPassword = "empresa789"

	SeedExchangeID = "ex-1"
)

type account struct {
	user         types.User
	passwordHash string
}

type companyAccount struct {
	company      types.Company
	passwordHash string
}

type dataset struct {
	accounts      map[string]*account
	companies     map[string]*companyAccount
	items         []types.Item
	categories    []types.Category
	exchanges     []types.Exchange
	notifications []types.Notification
	revoked       map[string]bool
	nextID        int
}

func seed() *dataset {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	city := "Guadalajara"
	value := decimal.RequireFromString("350.50")
	cheap := decimal.RequireFromString("120")

	return &dataset{
		accounts: map[string]*account{
			AdminUserID: {
				passwordHash: mustHash(AdminPassword),
				user: types.User{
					ID: AdminUserID, Email: AdminEmail, Username: "ana",
					FirstName: "Ana", LastName: "García", FullName: "Ana García",
					City: &city, IsActive: true, IsAdmin: true, EmailVerified: true,
					ReputationScore: 4.8, TotalExchanges: 12, SuccessfulExchanges: 11,
					CreatedAt: &created,
				},
			},
			MemberUserID: {
				passwordHash: mustHash(MemberPassword),
				user: types.User{
					ID: MemberUserID, Email: MemberEmail, Username: "luis",
					FirstName: "Luis", LastName: "Pérez", FullName: "Luis Pérez",
					IsActive: true, ReputationScore: 4.2, TotalExchanges: 3, SuccessfulExchanges: 3,
					CreatedAt: &created,
				},
			},
		},
		companies: map[string]*companyAccount{
			CompanyID: {
				passwordHash: mustHash(CompanyPassword),
				company: types.Company{
					ID: CompanyID, Username: "empresa", CompanyName: "Empresa Verde",
					Email: CompanyEmail, IsActive: true, IsVerified: true, CreatedAt: &created,
				},
			},
		},
		categories: []types.Category{
			{ID: "cat-1", Name: "Electrónica", Slug: "electronica", ItemCount: 1, IsActive: true, SortOrder: 1},
			{ID: "cat-2", Name: "Ropa", Slug: "ropa", ItemCount: 1, IsActive: true, SortOrder: 2},
			{ID: "cat-3", Name: "Libros", Slug: "libros", IsActive: true, SortOrder: 3},
		},
		items: []types.Item{
			{
				ID: "it-1", Title: "Bicicleta de montaña", Description: "Rodada 26, poco uso",
				CategoryID: "cat-1", Condition: enums.ItemConditionGood, EstimatedValue: &value,
				OwnerID: AdminUserID, Status: enums.ItemStatusAvailable, ViewCount: 40, InterestCount: 3,
				CreatedAt: &created,
			},
			{
				ID: "it-2", Title: "Chamarra de mezclilla", Description: "Talla M",
				CategoryID: "cat-2", Condition: enums.ItemConditionLikeNew, EstimatedValue: &cheap,
				OwnerID: MemberUserID, Status: enums.ItemStatusReserved, ViewCount: 8, InterestCount: 1,
				CreatedAt: &created,
			},
			{
				ID: "it-3", Title: "Lámpara de escritorio", Description: "Funciona perfecto",
				CategoryID: "cat-1", Condition: enums.ItemConditionFair,
				OwnerID: MemberUserID, Status: enums.ItemStatusExchanged, CreatedAt: &created,
			},
		},
		exchanges: []types.Exchange{
			{
				ID: SeedExchangeID, Status: enums.ExchangeStatusPending,
				RequesterID: MemberUserID, OwnerID: AdminUserID,
				RequesterItem: types.Object{"id": "it-2", "title": "Chamarra de mezclilla"},
				OwnerItem:     types.Object{"id": "it-1", "title": "Bicicleta de montaña"},
				CreatedAt:     &created,
			},
		},
		notifications: []types.Notification{
			{
				ID: "n-1", UserID: AdminUserID, NotificationType: enums.NotificationTypeExchangeRequest,
				Priority: enums.NotificationPriorityHigh, Title: "Nueva solicitud",
				Message: "Luis quiere intercambiar contigo", CreatedAt: &created,
			},
			{
				ID: "n-2", UserID: AdminUserID, NotificationType: enums.NotificationTypeSystemAnnouncement,
				Priority: enums.NotificationPriorityNormal, Title: "Bienvenida",
				Message: "Gracias por unirte a GreenLoop", IsRead: true, CreatedAt: &created,
			},
			{
				ID: "n-3", UserID: MemberUserID, NotificationType: enums.NotificationTypeSystemAnnouncement,
				Priority: enums.NotificationPriorityNormal, Title: "Bienvenida",
				Message: "Gracias por unirte a GreenLoop", CreatedAt: &created,
			},
		},
		revoked: map[string]bool{},
		nextID:  100,
	}
}

func (d *dataset) accountByEmail(email string) *account {
	for _, acct := range d.accounts {
		if acct.user.Email == email {
			return acct
		}
	}
	return nil
}

func (d *dataset) companyByEmail(email string) *companyAccount {
	for _, c := range d.companies {
		if c.company.Email == email {
			return c
		}
	}
	return nil
}

func (d *dataset) item(id string) (types.Item, bool) {
	for _, it := range d.items {
		if it.ID == id {
			return it, true
		}
	}
	return types.Item{}, false
}
