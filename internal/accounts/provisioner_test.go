package accounts_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/accounts"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/events/memory"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/interfaces"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/interfaces/mocks"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/logger"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models/events"
	storage "github.com/sheikh-saqib/exchange-compliance-ledger/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var smithJones = accounts.SpousalAccountRequest{
	PrimaryProfileID: "P1",
	SpouseProfileID:  "P2",
	PrimaryLastName:  "Smith",
	SpouseLastName:   "Jo",
}

func TestProvisioner_CreateSpousalAccount(t *testing.T) {
	store := storage.NewStore()
	for i := 0; i < 7; i++ {
		store.AddTaxAccount(models.TaxAccount{
			ID:            string(rune('a' + i)),
			AccountNumber: accounts.SpousalAccountNumber("Old", "Acct", i),
			IsSpousal:     true,
		})
	}
	store.AddTaxAccount(models.TaxAccount{ID: "single", AccountNumber: "INV-SINGLE"})
	publisher := memory.NewPublisher()

	account, err := accounts.NewProvisioner(store, publisher, logger.L()).CreateSpousalAccount(context.Background(), smithJones)

	require.NoError(t, err)
	assert.Equal(t, "INV-SMIJOO007", account.AccountNumber)
	assert.True(t, account.IsSpousal)
	assert.NotEmpty(t, account.ID)
	require.NotNil(t, account.SpouseProfileID)
	assert.Equal(t, "P2", *account.SpouseProfileID)

	messages := publisher.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, events.TopicSpousalAccountCreated, messages[0].Topic)
	assert.Equal(t, account.ID, messages[0].Key)
}

func TestProvisioner_RequiresBothProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := accounts.NewProvisioner(mocks.NewMockTaxAccountStore(ctrl), mocks.NewMockEventPublisher(ctrl), logger.L())

	_, err := p.CreateSpousalAccount(context.Background(), accounts.SpousalAccountRequest{PrimaryProfileID: "P1"})

	assert.ErrorIs(t, err, models.ErrProfileIDRequired)
}

func TestProvisioner_RetriesOnNumberCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockTaxAccountStore(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	gomock.InOrder(
		store.EXPECT().CreateSpousalAccount(gomock.Any(), gomock.Any()).
			Return(models.TaxAccount{}, models.ErrAccountNumberTaken),
		store.EXPECT().CreateSpousalAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, build interfaces.SpousalAccountBuilder) (models.TaxAccount, error) {
				return build(8)
			}),
	)
	publisher.EXPECT().
		Publish(gomock.Any(), events.TopicSpousalAccountCreated, gomock.Any(), gomock.Any()).
		Return(nil)

	account, err := accounts.NewProvisioner(store, publisher, logger.L()).CreateSpousalAccount(context.Background(), smithJones)

	require.NoError(t, err)
	assert.Equal(t, "INV-SMIJOO008", account.AccountNumber)
}

func TestProvisioner_GivesUpAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockTaxAccountStore(ctrl)
	store.EXPECT().CreateSpousalAccount(gomock.Any(), gomock.Any()).
		Return(models.TaxAccount{}, models.ErrAccountNumberTaken).
		Times(accounts.DefaultMaxAttempts)

	_, err := accounts.NewProvisioner(store, mocks.NewMockEventPublisher(ctrl), logger.L()).
		CreateSpousalAccount(context.Background(), smithJones)

	assert.ErrorIs(t, err, models.ErrAccountNumberTaken)
}

func TestProvisioner_StoreFailureIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("connection refused")
	store := mocks.NewMockTaxAccountStore(ctrl)
	store.EXPECT().CreateSpousalAccount(gomock.Any(), gomock.Any()).Return(models.TaxAccount{}, storeErr)

	_, err := accounts.NewProvisioner(store, mocks.NewMockEventPublisher(ctrl), logger.L()).
		CreateSpousalAccount(context.Background(), smithJones)

	assert.ErrorIs(t, err, storeErr)
}

func TestProvisioner_PublishFailureDoesNotFailCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockEventPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	account, err := accounts.NewProvisioner(storage.NewStore(), publisher, logger.L()).
		CreateSpousalAccount(context.Background(), smithJones)

	require.NoError(t, err)
	assert.Equal(t, "INV-SMIJOO000", account.AccountNumber)
}

// Concurrent provisioning must never hand out the same number twice; the
// store serializes the count with the insert.
func TestProvisioner_ConcurrentCreationYieldsUniqueNumbers(t *testing.T) {
	const workers = 25

	store := storage.NewStore()
	p := accounts.NewProvisioner(store, memory.NewPublisher(), logger.L())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = make(map[string]bool)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			account, err := p.CreateSpousalAccount(context.Background(), smithJones)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			numbers[account.AccountNumber] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, numbers, workers)
	for i := 0; i < workers; i++ {
		assert.True(t, numbers[accounts.SpousalAccountNumber("Smith", "Jo", i)], "missing sequence %d", i)
	}
}
