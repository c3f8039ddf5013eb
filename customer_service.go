package centavo

import (
	"context"
	"net/http"
	"net/url"
)

// CustomerService manages gateway-side customer records.
type CustomerService struct {
	backend *backend
}

// Create registers a customer with the gateway.
func (s *CustomerService) Create(ctx context.Context, customer *Customer) (*Customer, error) {
	if customer == nil {
		return nil, &ValidationError{Message: "customer is required"}
	}
	if customer.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "customer name is required"}
	}

	created, err := do[Customer](ctx, s.backend, http.MethodPost, "customers", nil, customer)
	if err != nil {
		return nil, err
	}
	if err := created.checkDecoded(); err != nil {
		return nil, err
	}
	return created, nil
}

// Get fetches a customer by id.
func (s *CustomerService) Get(ctx context.Context, customerID string) (*Customer, error) {
	if customerID == "" {
		return nil, &ValidationError{Field: "customer_id", Message: "customer id is required"}
	}

	customer, err := do[Customer](ctx, s.backend, http.MethodGet, "customers/"+url.PathEscape(customerID), nil, nil)
	if err != nil {
		return nil, err
	}
	if err := customer.checkDecoded(); err != nil {
		return nil, err
	}
	return customer, nil
}

// List returns the customers matching params, in the gateway's order.
func (s *CustomerService) List(ctx context.Context, params *SearchParams) ([]Customer, error) {
	return doList[Customer](ctx, s.backend, "customers", params.query())
}

// Update rewrites a customer record. An ExternalID set to Null serializes
// as an explicit JSON null, clearing the field on the gateway; an absent
// ExternalID leaves it untouched.
func (s *CustomerService) Update(ctx context.Context, customer *Customer) (*Customer, error) {
	if customer == nil {
		return nil, &ValidationError{Message: "customer is required"}
	}
	if customer.ID == "" {
		return nil, &ValidationError{Field: "id", Message: "customer id is required"}
	}

	updated, err := do[Customer](ctx, s.backend, http.MethodPut, "customers/"+url.PathEscape(customer.ID), nil, customer)
	if err != nil {
		return nil, err
	}
	if err := updated.checkDecoded(); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a customer record from the gateway.
func (s *CustomerService) Delete(ctx context.Context, customerID string) error {
	if customerID == "" {
		return &ValidationError{Field: "customer_id", Message: "customer id is required"}
	}

	_, err := do[struct{}](ctx, s.backend, http.MethodDelete, "customers/"+url.PathEscape(customerID), nil, nil)
	return err
}
