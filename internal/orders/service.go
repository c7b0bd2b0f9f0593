package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/order"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/mail"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
)

type Service struct {
	store    store.Executor
	mailer   mail.Mailer
	validate *validator.Validate
	log      *logrus.Logger
}

func NewService(st store.Executor, mailer mail.Mailer, log *logrus.Logger) *Service {
	return &Service{
		store:    st,
		mailer:   mailer,
		validate: validator.New(),
		log:      log,
	}
}

// CreateInput is the checkout payload. The item list is snapshotted as-is
// and totalAmount is stored exactly as supplied; the storefront computed
// it and the admin sees what the customer saw.
type CreateInput struct {
	CustomerID      *string       `validate:"omitempty"`
	CustomerName    string        `validate:"required"`
	CustomerEmail   string        `validate:"required,email"`
	CustomerPhone   string        `validate:"required"`
	ShippingAddress order.Address `validate:"required"`
	Items           []order.Item  `validate:"required,min=1,dive"`
	TotalAmount     float64       `validate:"gte=0"`
	PaymentMethod   string        `validate:"required"`
	Notes           string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (order.Order, error) {
	if err := s.validate.Struct(in); err != nil {
		return order.Order{}, fmt.Errorf("invalid order: %w", err)
	}

	items, err := json.Marshal(in.Items)
	if err != nil {
		return order.Order{}, err
	}
	address, err := json.Marshal(in.ShippingAddress)
	if err != nil {
		return order.Order{}, err
	}

	row := store.Row{
		"customer_id":      nullableStr(in.CustomerID),
		"customer_name":    in.CustomerName,
		"customer_email":   in.CustomerEmail,
		"customer_phone":   in.CustomerPhone,
		"shipping_address": string(address),
		"items":            string(items),
		"total_amount":     in.TotalAmount,
		"status":           order.StatusPending,
		"payment_method":   in.PaymentMethod,
		"payment_status":   order.PaymentPending,
		"notes":            in.Notes,
	}
	rows, err := s.store.Exec(ctx, store.InsertRow(store.TableOrders, store.OrderFields.Columns(), row))
	if err != nil {
		return order.Order{}, fmt.Errorf("create order: %w", err)
	}
	if len(rows) == 0 {
		return order.Order{}, store.ErrNotFound
	}
	o := fromRow(rows[0])

	// Confirmation mail is best effort, never blocks the checkout.
	if err := s.mailer.Send(o.CustomerEmail, confirmationSubject(o), confirmationBody(o)); err != nil {
		s.log.WithError(err).WithField("order", o.ID).Warn("orders: confirmation mail failed")
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) []order.Order {
	rows, err := s.store.Exec(ctx, store.Select{
		Table:   store.TableOrders,
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		s.log.WithError(err).Warn("orders: list failed")
		return []order.Order{}
	}
	return fromRows(rows)
}

func (s *Service) Get(ctx context.Context, id string) *order.Order {
	rows, err := s.store.Exec(ctx, store.Select{
		Table: store.TableOrders,
		Where: []store.Cond{store.Eq("id", id)},
	})
	if err != nil {
		s.log.WithError(err).WithField("id", id).Warn("orders: get failed")
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	o := fromRow(rows[0])
	return &o
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (order.Order, error) {
	if !order.ValidStatus(status) {
		return order.Order{}, fmt.Errorf("unknown order status %q", status)
	}
	rows, err := s.store.Exec(ctx, store.PartialUpdate(store.TableOrders, store.OrderFields, id,
		map[string]any{"status": status}))
	if err != nil {
		return order.Order{}, fmt.Errorf("update order status %s: %w", id, err)
	}
	if len(rows) == 0 {
		return order.Order{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) (order.Order, error) {
	rows, err := s.store.Exec(ctx, store.PartialUpdate(store.TableOrders, store.OrderFields, id,
		map[string]any{"paymentStatus": paymentStatus}))
	if err != nil {
		return order.Order{}, fmt.Errorf("update payment status %s: %w", id, err)
	}
	if len(rows) == 0 {
		return order.Order{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

func (s *Service) BulkUpdateStatus(ctx context.Context, ids []string, status string) error {
	if len(ids) == 0 {
		return nil
	}
	if !order.ValidStatus(status) {
		return fmt.Errorf("unknown order status %q", status)
	}
	in := make([]any, len(ids))
	for i, id := range ids {
		in[i] = id
	}
	_, err := s.store.Exec(ctx, store.Update{
		Table: store.TableOrders,
		Set:   []store.Assign{{Column: "status", Value: status}, store.StampNow()},
		Where: []store.Cond{store.InList("id", in)},
	})
	if err != nil {
		return fmt.Errorf("bulk update order status: %w", err)
	}
	return nil
}

func confirmationSubject(o order.Order) string {
	return fmt.Sprintf("Potvrda porudžbine / Order confirmation #%s", o.ID)
}

func confirmationBody(o order.Order) string {
	body := fmt.Sprintf("Hvala na porudžbini! / Thank you for your order!\n\nOrder #%s\n\n", o.ID)
	for _, it := range o.Items {
		body += fmt.Sprintf("  %s x%d — %.2f RSD\n", it.Title, it.Quantity, it.Price)
	}
	body += fmt.Sprintf("\nUkupno / Total: %.2f RSD\n", o.TotalAmount)
	return body
}

func nullableStr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func fromRows(rows []store.Row) []order.Order {
	out := make([]order.Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out
}

func fromRow(r store.Row) order.Order {
	o := order.Order{
		ID:            r.Str("id"),
		CustomerID:    r.StrPtr("customer_id"),
		CustomerName:  r.Str("customer_name"),
		CustomerEmail: r.Str("customer_email"),
		CustomerPhone: r.Str("customer_phone"),
		TotalAmount:   r.Float("total_amount"),
		Status:        r.Str("status"),
		PaymentMethod: r.Str("payment_method"),
		PaymentStatus: r.Str("payment_status"),
		Notes:         r.Str("notes"),
		CreatedAt:     r.Time("created_at"),
		UpdatedAt:     r.Time("updated_at"),
	}
	_ = json.Unmarshal([]byte(r.Str("shipping_address")), &o.ShippingAddress)
	_ = json.Unmarshal([]byte(r.Str("items")), &o.Items)
	return o
}
