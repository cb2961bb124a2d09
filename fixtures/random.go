package fixtures

import (
	"github.com/adamluzsi/testcase/random"
)

// Random is the shared random value generator behind the package helpers.
// It is safe for concurrent use.
var Random = random.New(random.CryptoSeed{})
