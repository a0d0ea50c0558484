package cmd

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// PalletCapacity is the capacity of one pallet in coefficient units.
	PalletCapacity float64
	// AllowMixedGroups permits different product groups on one pallet.
	AllowMixedGroups bool
}
