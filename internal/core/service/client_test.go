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

func TestService_CreateClient(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	client := domain.Client{ID: 1, Name: "Juan Pérez", Identity: "0801-1990-12345"}

	type createClientTest struct {
		name      string
		client    domain.Client
		mock      prepareMocks
		expError  error
		expResult *domain.Client
	}

	tests := []createClientTest{
		{
			name:   "create good",
			client: domain.Client{Name: client.Name, Identity: client.Identity},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadClientByIdentity(gomock.Any(), client.Identity).
					Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(&client, nil)
			},
			expResult: &client,
		},
		{
			name:     "preassigned cliente id rejected",
			client:   domain.Client{ID: 5, Name: client.Name, Identity: client.Identity},
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrIDNotZero,
		},
		{
			name:   "identidad already taken",
			client: domain.Client{Name: "Otro Nombre", Identity: client.Identity},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadClientByIdentity(gomock.Any(), client.Identity).
					Return(&client, nil)
			},
			expError: domain.ErrIdentityTaken,
		},
		{
			name:   "identidad conflict raced at insert",
			client: domain.Client{Name: client.Name, Identity: client.Identity},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadClientByIdentity(gomock.Any(), client.Identity).
					Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData)
			},
			expError: domain.ErrIdentityTaken,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, logger)
			assert.NoError(t, err)

			result, err := s.CreateClient(context.Background(), &test.client)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expResult, result)
		})
	}
}

func TestService_UpdateClient(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	client := domain.Client{ID: 1, Name: "Juan Pérez", Identity: "0801-1990-12345"}
	other := domain.Client{ID: 2, Name: "María López", Identity: "0501-1985-67890"}

	type updateClientTest struct {
		name     string
		client   domain.Client
		mock     prepareMocks
		expError error
	}

	tests := []updateClientTest{
		{
			name:   "update good",
			client: domain.Client{ID: 1, Name: "Juan P. Pérez", Identity: client.Identity},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadClient(gomock.Any(), int64(1)).Return(&client, nil)
				repo.EXPECT().ReadClientByIdentity(gomock.Any(), client.Identity).
					Return(&client, nil)
				repo.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Client) (*domain.Client, error) {
						return c, nil
					})
			},
		},
		{
			name:   "missing cliente",
			client: domain.Client{ID: 9, Name: "Nadie", Identity: "0000-0000-00000"},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadClient(gomock.Any(), int64(9)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
		{
			name:   "identidad of another cliente",
			client: domain.Client{ID: 1, Name: client.Name, Identity: other.Identity},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadClient(gomock.Any(), int64(1)).Return(&client, nil)
				repo.EXPECT().ReadClientByIdentity(gomock.Any(), other.Identity).
					Return(&other, nil)
			},
			expError: domain.ErrIdentityTaken,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, logger)
			assert.NoError(t, err)

			result, err := s.UpdateClient(context.Background(), &test.client)

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
