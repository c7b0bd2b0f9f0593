package customers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/customer"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/order"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
)

type Service struct {
	store store.Executor
	log   *logrus.Logger
}

func NewService(st store.Executor, log *logrus.Logger) *Service {
	return &Service{store: st, log: log}
}

func (s *Service) List(ctx context.Context) []customer.Customer {
	rows, err := s.store.Exec(ctx, store.Select{
		Table:   store.TableCustomers,
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		s.log.WithError(err).Warn("customers: list failed")
		return []customer.Customer{}
	}
	return fromRows(rows)
}

func (s *Service) Get(ctx context.Context, id string) *customer.Customer {
	rows, err := s.store.Exec(ctx, store.Select{
		Table: store.TableCustomers,
		Where: []store.Cond{store.Eq("id", id)},
	})
	if err != nil {
		s.log.WithError(err).WithField("id", id).Warn("customers: get failed")
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	c := fromRow(rows[0])
	return &c
}

type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   order.Address
}

func (s *Service) Create(ctx context.Context, in CreateInput) (customer.Customer, error) {
	address, err := json.Marshal(in.Address)
	if err != nil {
		return customer.Customer{}, err
	}
	row := store.Row{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"email":      in.Email,
		"phone":      in.Phone,
		"address":    string(address),
	}
	rows, err := s.store.Exec(ctx, store.InsertRow(store.TableCustomers, store.CustomerFields.Columns(), row))
	if err != nil {
		return customer.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	if len(rows) == 0 {
		return customer.Customer{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

type UpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *order.Address
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (customer.Customer, error) {
	set := map[string]any{}
	if in.FirstName != nil {
		set["firstName"] = *in.FirstName
	}
	if in.LastName != nil {
		set["lastName"] = *in.LastName
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Phone != nil {
		set["phone"] = *in.Phone
	}
	if in.Address != nil {
		address, err := json.Marshal(*in.Address)
		if err != nil {
			return customer.Customer{}, err
		}
		set["address"] = string(address)
	}
	rows, err := s.store.Exec(ctx, store.PartialUpdate(store.TableCustomers, store.CustomerFields, id, set))
	if err != nil {
		return customer.Customer{}, fmt.Errorf("update customer %s: %w", id, err)
	}
	if len(rows) == 0 {
		return customer.Customer{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.store.Exec(ctx, store.Delete{
		Table: store.TableCustomers,
		Where: []store.Cond{store.Eq("id", id)},
	})
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	return nil
}

func fromRows(rows []store.Row) []customer.Customer {
	out := make([]customer.Customer, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out
}

func fromRow(r store.Row) customer.Customer {
	c := customer.Customer{
		ID:        r.Str("id"),
		FirstName: r.Str("first_name"),
		LastName:  r.Str("last_name"),
		Email:     r.Str("email"),
		Phone:     r.Str("phone"),
		CreatedAt: r.Time("created_at"),
		UpdatedAt: r.Time("updated_at"),
	}
	_ = json.Unmarshal([]byte(r.Str("address")), &c.Address)
	return c
}
