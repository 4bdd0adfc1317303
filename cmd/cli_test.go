package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"truckrental/internal/core/domain/model/branch"
	"truckrental/internal/core/domain/model/customer"
	"truckrental/internal/core/domain/model/truck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")
	assert.Contains(t, names, "seed")
	assert.Contains(t, names, "version")
}

func TestMigrateCmd_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range migrateCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"up", "down", "version"}, names)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "1.2.3"
	defer func() { version = originalVersion }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "truckrental version 1.2.3")
}

func TestSeedCmd_RequiresFile(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"seed"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

const seedYAML = `
branches:
  - name: Cape Town Central
    address: 12 Long Street, Cape Town
trucks:
  - vin: JALFRR90MN7000123
    model: Isuzu NPR
    licensePlate: CA 123-456
    dailyRate: 95.5
customers:
  - firstName: Ada
    lastName: Lovelace
    email: ada@example.com
    cellNo: "0821234567"
`

func writeSeedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))
	return path
}

func TestLoadSeedData(t *testing.T) {
	data, err := LoadSeedData(writeSeedFile(t))
	require.NoError(t, err)

	require.Len(t, data.Branches, 1)
	assert.Equal(t, "12 Long Street, Cape Town", data.Branches[0].Address)
	require.Len(t, data.Trucks, 1)
	assert.Equal(t, "CA 123-456", data.Trucks[0].LicensePlate)
	assert.InDelta(t, 95.5, data.Trucks[0].DailyRate, 0.001)
	require.Len(t, data.Customers, 1)
	assert.Equal(t, "0821234567", data.Customers[0].CellNo)
}

func TestLoadSeedData_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeedData(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("trucks: [unterminated"), 0o600))

		_, err := LoadSeedData(path)
		assert.ErrorContains(t, err, "failed to parse")
	})
}

type mockBranchCreator struct{ mock.Mock }

func (m *mockBranchCreator) Create(ctx context.Context, draft branch.Branch) (branch.Branch, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(branch.Branch), args.Error(1)
}

type mockTruckCreator struct{ mock.Mock }

func (m *mockTruckCreator) Create(ctx context.Context, draft truck.Truck) (truck.Truck, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(truck.Truck), args.Error(1)
}

type mockCustomerCreator struct{ mock.Mock }

func (m *mockCustomerCreator) Create(ctx context.Context, draft customer.Customer) (customer.Customer, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(customer.Customer), args.Error(1)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	data, err := LoadSeedData(writeSeedFile(t))
	require.NoError(t, err)

	t.Run("creates every record", func(t *testing.T) {
		branches := new(mockBranchCreator)
		trucks := new(mockTruckCreator)
		customers := new(mockCustomerCreator)

		branches.On("Create", ctx, mock.MatchedBy(func(b branch.Branch) bool {
			return b.ID() == 0 && b.Name() == "Cape Town Central"
		})).Return(branch.Branch{}, nil)
		trucks.On("Create", ctx, mock.MatchedBy(func(tr truck.Truck) bool {
			return tr.VIN() == "JALFRR90MN7000123" && tr.Available()
		})).Return(truck.Truck{}, nil)
		customers.On("Create", ctx, mock.MatchedBy(func(c customer.Customer) bool {
			return c.Email() == "ada@example.com"
		})).Return(customer.Customer{}, nil)

		created, err := Seed(ctx, data, branches, trucks, customers)

		require.NoError(t, err)
		assert.Equal(t, 3, created)
		branches.AssertExpectations(t)
		trucks.AssertExpectations(t)
		customers.AssertExpectations(t)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		branches := new(mockBranchCreator)
		trucks := new(mockTruckCreator)
		customers := new(mockCustomerCreator)
		failure := errors.New("duplicate vin")

		branches.On("Create", ctx, mock.Anything).Return(branch.Branch{}, nil)
		trucks.On("Create", ctx, mock.Anything).Return(truck.Truck{}, failure)

		created, err := Seed(ctx, data, branches, trucks, customers)

		assert.ErrorIs(t, err, failure)
		assert.ErrorContains(t, err, "JALFRR90MN7000123")
		assert.Equal(t, 1, created)
		customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
