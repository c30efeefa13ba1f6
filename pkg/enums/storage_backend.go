package enums

import "fmt"

// StorageBackend selects where the persisted store slices live.
type StorageBackend string

const (
	StorageBackendMemory   StorageBackend = "memory"
	StorageBackendFile     StorageBackend = "file"
	StorageBackendSQLite   StorageBackend = "sqlite"
	StorageBackendPostgres StorageBackend = "postgres"
	StorageBackendRedis    StorageBackend = "redis"
)

var validStorageBackends = []StorageBackend{
	StorageBackendMemory,
	StorageBackendFile,
	StorageBackendSQLite,
	StorageBackendPostgres,
	StorageBackendRedis,
}

func (b StorageBackend) String() string {
	return string(b)
}

// IsValid reports whether the value matches a supported backend.
func (b StorageBackend) IsValid() bool {
	for _, candidate := range validStorageBackends {
		if candidate == b {
			return true
		}
	}
	return false
}

// IsSQL reports whether the backend is served through gorm.
func (b StorageBackend) IsSQL() bool {
	return b == StorageBackendSQLite || b == StorageBackendPostgres
}

// ParseStorageBackend converts the raw string to StorageBackend.
func ParseStorageBackend(value string) (StorageBackend, error) {
	for _, candidate := range validStorageBackends {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid storage backend %q", value)
}
