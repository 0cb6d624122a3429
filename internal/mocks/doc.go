// Package mocks provides function-field mock implementations of the store
// interfaces for handler tests.
//
// Each mock has one Fn field per interface method. A nil field makes the
// method return zero values, so tests only set what they exercise:
//
//	companies := &mocks.MockCompanyStore{
//	    GetFn: func(ctx context.Context, code string) (*domain.Company, error) {
//	        return nil, store.ErrCompanyNotFound
//	    },
//	}
package mocks
