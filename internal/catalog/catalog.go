// Package catalog holds the static service master and its profit model.
//
// A service is either unit-priced (profit = (sellingRate - baseCost) x quantity)
// or lump-sum (profit = the full amount paid). The catalog is provisioned at
// startup and read-only afterwards. Nothing in the ledger write path consults
// it yet; it backs the /api/services endpoint and future profit reporting.
package catalog

import "github.com/shopspring/decimal"

const (
	TypeUnit    ServiceType = "UNIT"
	TypeLumpSum ServiceType = "LUMP_SUM"
)

type ServiceType string

type Service struct {
	Name        string
	Type        ServiceType
	SellingRate decimal.Decimal
	BaseCost    decimal.Decimal
}

// Provider is a lookup capability over the service master.
type Provider interface {
	Get(name string) (Service, bool)
	List() []Service
}

// Static is an in-memory Provider seeded at construction.
type Static struct {
	services map[string]Service
	order    []string
}

// NewStatic builds the default service master.
func NewStatic() *Static {
	s := &Static{services: make(map[string]Service)}
	s.add(Service{
		Name:        "Voice Call",
		Type:        TypeUnit,
		SellingRate: decimal.RequireFromString("0.70"),
		BaseCost:    decimal.RequireFromString("0.25"),
	})
	s.add(Service{Name: "WhatsApp", Type: TypeLumpSum})
	return s
}

func (s *Static) add(svc Service) {
	s.services[svc.Name] = svc
	s.order = append(s.order, svc.Name)
}

func (s *Static) Get(name string) (Service, bool) {
	svc, ok := s.services[name]
	return svc, ok
}

// List returns services in provisioning order.
func (s *Static) List() []Service {
	out := make([]Service, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.services[name])
	}
	return out
}

// CalculateProfit computes the profit for one payment. Unit services ignore
// the amount paid entirely; lump-sum services return it verbatim.
func CalculateProfit(svc Service, amount decimal.Decimal, quantity int64) decimal.Decimal {
	if svc.Type == TypeUnit {
		return svc.SellingRate.Sub(svc.BaseCost).Mul(decimal.NewFromInt(quantity))
	}
	return amount
}
