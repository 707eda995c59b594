package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"github.com/jvillalobos/ventasapi/internal/core/port/mock"
	"github.com/jvillalobos/ventasapi/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_CreateProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	product := domain.Product{
		ID:          1,
		Name:        "Laptop HP",
		Description: "Laptop HP Pavilion",
		Price:       qty("15000.00"),
		Stock:       10,
	}

	type createProductTest struct {
		name     string
		product  domain.Product
		mock     prepareMocks
		expError error
	}

	tests := []createProductTest{
		{
			name: "create good",
			product: domain.Product{
				Name:        product.Name,
				Description: product.Description,
				Price:       product.Price,
				Stock:       product.Stock,
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(&product, nil)
			},
		},
		{
			name:     "preassigned producto id rejected",
			product:  domain.Product{ID: 3, Name: product.Name, Price: product.Price},
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrIDNotZero,
		},
		{
			name:     "negative existencia rejected",
			product:  domain.Product{Name: product.Name, Price: product.Price, Stock: -1},
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, logger)
			assert.NoError(t, err)

			result, err := s.CreateProduct(context.Background(), &test.product)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}

func TestService_GetProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().ReadProduct(gomock.Any(), int64(8)).Return(nil, domain.ErrDataNotFound)

	s, err := service.NewService(repo, logger)
	assert.NoError(t, err)

	result, err := s.GetProduct(context.Background(), 8)
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
	assert.Contains(t, err.Error(), "producto with ID 8 not found")
	assert.Nil(t, result)
}
