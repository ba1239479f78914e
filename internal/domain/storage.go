package domain

// DefaultKeyPrefix namespaces all person hashes in the store.
// Record keys follow <prefix><collection>:<id>.
const DefaultKeyPrefix = "peoplesearch:"
