package cmd

import (
	"context"
	"fmt"
	"os"

	"truckrental/internal/core/domain/model/branch"
	"truckrental/internal/core/domain/model/customer"
	"truckrental/internal/core/domain/model/truck"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedData is the reference data a fresh installation starts with.
type SeedData struct {
	Branches []struct {
		Name    string `yaml:"name"`
		Address string `yaml:"address"`
	} `yaml:"branches"`
	Trucks []struct {
		VIN          string  `yaml:"vin"`
		Model        string  `yaml:"model"`
		LicensePlate string  `yaml:"licensePlate"`
		DailyRate    float64 `yaml:"dailyRate"`
	} `yaml:"trucks"`
	Customers []struct {
		FirstName string `yaml:"firstName"`
		LastName  string `yaml:"lastName"`
		Email     string `yaml:"email"`
		CellNo    string `yaml:"cellNo"`
	} `yaml:"customers"`
}

func LoadSeedData(path string) (SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, err
	}

	var data SeedData
	if err = yaml.Unmarshal(raw, &data); err != nil {
		return SeedData{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return data, nil
}

type (
	branchCreator interface {
		Create(ctx context.Context, draft branch.Branch) (branch.Branch, error)
	}
	truckCreator interface {
		Create(ctx context.Context, draft truck.Truck) (truck.Truck, error)
	}
	customerCreator interface {
		Create(ctx context.Context, draft customer.Customer) (customer.Customer, error)
	}
)

// Seed creates every record in data through the services, stopping at the first failure.
// Trucks start available.
func Seed(
	ctx context.Context,
	data SeedData,
	branches branchCreator,
	trucks truckCreator,
	customers customerCreator,
) (int, error) {
	created := 0

	for _, b := range data.Branches {
		draft := branch.NewBuilder().SetName(b.Name).SetAddress(b.Address).Build()
		if _, err := branches.Create(ctx, draft); err != nil {
			return created, fmt.Errorf("branch %q: %w", b.Name, err)
		}
		created++
	}

	for _, t := range data.Trucks {
		draft := truck.NewBuilder().
			SetVIN(t.VIN).
			SetModel(t.Model).
			SetLicensePlate(t.LicensePlate).
			SetDailyRate(t.DailyRate).
			SetAvailable(true).
			Build()
		if _, err := trucks.Create(ctx, draft); err != nil {
			return created, fmt.Errorf("truck %q: %w", t.VIN, err)
		}
		created++
	}

	for _, c := range data.Customers {
		draft := customer.NewBuilder().
			SetFirstName(c.FirstName).
			SetLastName(c.LastName).
			SetEmail(c.Email).
			SetCellNo(c.CellNo).
			Build()
		if _, err := customers.Create(ctx, draft); err != nil {
			return created, fmt.Errorf("customer %q: %w", c.Email, err)
		}
		created++
	}

	return created, nil
}

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load branches, trucks and customers from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := LoadSeedData(args[0])
	if err != nil {
		return err
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	gormDB, err := openDB(cfg)
	if err != nil {
		return err
	}

	app := NewCompositionRoot(cfg, gormDB, logger)
	created, err := Seed(cmd.Context(), data,
		app.CreateBranchService(), app.CreateTruckService(), app.CreateCustomerService())
	cmd.Printf("Seeded %d records.\n", created)
	return err
}
