package enums

import "fmt"

// StoreDriver selects the persistence backend behind the admin repository.
type StoreDriver string

const (
	StoreDriverMongo    StoreDriver = "mongo"
	StoreDriverPostgres StoreDriver = "postgres"
	StoreDriverSQLite   StoreDriver = "sqlite"
)

var validStoreDrivers = []StoreDriver{
	StoreDriverMongo,
	StoreDriverPostgres,
	StoreDriverSQLite,
}

// String implements fmt.Stringer.
func (s StoreDriver) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StoreDriver.
func (s StoreDriver) IsValid() bool {
	for _, candidate := range validStoreDrivers {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsSQL reports whether the driver is served by the GORM repository.
func (s StoreDriver) IsSQL() bool {
	return s == StoreDriverPostgres || s == StoreDriverSQLite
}

// ParseStoreDriver converts raw input into a StoreDriver.
func ParseStoreDriver(value string) (StoreDriver, error) {
	for _, candidate := range validStoreDrivers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid store driver %q", value)
}
