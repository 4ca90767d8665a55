package registry

import (
	"fmt"
)

// Registry is an immutable, ordered collection of example descriptors.
// Iteration order is declaration order.
type Registry struct {
	examples []Example
	byName   map[string]int
}

// New builds a registry from a descriptor list. Every descriptor must have a
// non-empty name, contract path and test path, and names must be unique.
func New(examples []Example) (*Registry, error) {
	byName := make(map[string]int, len(examples))
	for i, ex := range examples {
		if ex.Name == "" {
			return nil, fmt.Errorf("example at index %d: empty name", i)
		}
		if ex.ContractPath == "" {
			return nil, fmt.Errorf("example %q: empty contract path", ex.Name)
		}
		if ex.TestPath == "" {
			return nil, fmt.Errorf("example %q: empty test path", ex.Name)
		}
		if _, dup := byName[ex.Name]; dup {
			return nil, fmt.Errorf("duplicate example name %q", ex.Name)
		}
		byName[ex.Name] = i
	}

	return &Registry{examples: append([]Example(nil), examples...), byName: byName}, nil
}

// Lookup returns the descriptor registered under name, or a *NotFoundError
// carrying the full list of known names.
func (r *Registry) Lookup(name string) (Example, error) {
	i, ok := r.byName[name]
	if !ok {
		return Example{}, &NotFoundError{Name: name, Known: r.Names()}
	}
	return r.examples[i], nil
}

// Names returns all registered names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.examples))
	for i, ex := range r.examples {
		names[i] = ex.Name
	}
	return names
}

// Examples returns the descriptors in declaration order.
func (r *Registry) Examples() []Example {
	return append([]Example(nil), r.examples...)
}

// Len returns the number of registered examples.
func (r *Registry) Len() int {
	return len(r.examples)
}

var defaultRegistry = mustNew(builtin)

// Default returns the built-in registry. The returned value is shared and
// read-only.
func Default() *Registry {
	return defaultRegistry
}

func mustNew(examples []Example) *Registry {
	r, err := New(examples)
	if err != nil {
		panic(err)
	}
	return r
}

// builtin lists every example shipped with this repository. Adding an example
// means adding an entry here; there is no runtime registration.
var builtin = []Example{
	{
		Name:         "fhe-add",
		ContractPath: "contracts/basic/FHEAdd.sol",
		TestPath:     "test/basic/FHEAdd.ts",
		Description:  "Demonstrates FHE addition: two encrypted integers are summed without ever being decrypted on chain.",
		Category:     CategoryBasic,
	},
	{
		Name:         "fhe-counter",
		ContractPath: "contracts/basic/FHECounter.sol",
		TestPath:     "test/basic/FHECounter.ts",
		Description:  "A minimal encrypted counter showing increment and decrement over an euint32 state variable.",
		Category:     CategoryBasic,
	},
	{
		Name:         "fhe-select",
		ContractPath: "contracts/basic/FHESelect.sol",
		TestPath:     "test/basic/FHESelect.ts",
		Description:  "Branching on encrypted conditions with FHE.select instead of plaintext if statements.",
		Category:     CategoryBasic,
	},
	{
		Name:         "fhe-random",
		ContractPath: "contracts/basic/FHERandom.sol",
		TestPath:     "test/basic/FHERandom.ts",
		Description:  "Generating encrypted random values on chain and bounding them to a range.",
		Category:     CategoryBasic,
	},
	{
		Name:         "encrypt-single-value",
		ContractPath: "contracts/encryption/EncryptSingleValue.sol",
		TestPath:     "test/encryption/EncryptSingleValue.ts",
		Description:  "Accepting one encrypted input with its zero-knowledge proof and storing it as a ciphertext handle.",
		Category:     CategoryEncryption,
	},
	{
		Name:         "encrypt-multiple-values",
		ContractPath: "contracts/encryption/EncryptMultipleValues.sol",
		TestPath:     "test/encryption/EncryptMultipleValues.ts",
		Description:  "Packing several encrypted inputs into a single proof and unpacking them inside the contract.",
		Category:     CategoryEncryption,
	},
	{
		Name:         "decrypt-single-value",
		ContractPath: "contracts/decryption/DecryptSingleValue.sol",
		TestPath:     "test/decryption/DecryptSingleValue.ts",
		Description:  "Requesting public decryption of one ciphertext through the decryption oracle callback flow.",
		Category:     CategoryDecryption,
	},
	{
		Name:         "decrypt-multiple-values",
		ContractPath: "contracts/decryption/DecryptMultipleValues.sol",
		TestPath:     "test/decryption/DecryptMultipleValues.ts",
		Description:  "Batching several ciphertexts into one decryption request and handling the combined callback.",
		Category:     CategoryDecryption,
	},
	{
		Name:         "user-decrypt",
		ContractPath: "contracts/decryption/UserDecrypt.sol",
		TestPath:     "test/decryption/UserDecrypt.ts",
		Description:  "Re-encrypting a ciphertext to a user's public key so only that user can read the value off chain.",
		Category:     CategoryDecryption,
	},
	{
		Name:         "access-control",
		ContractPath: "contracts/education/AccessControl.sol",
		TestPath:     "test/education/AccessControl.ts",
		Description:  "Granting and revoking ciphertext permissions with FHE.allow, FHE.allowThis and FHE.allowTransient.",
		Category:     CategoryEducation,
	},
	{
		Name:         "input-proofs",
		ContractPath: "contracts/education/InputProofs.sol",
		TestPath:     "test/education/InputProofs.ts",
		Description:  "Why encrypted inputs carry zero-knowledge proofs and what happens when a proof does not verify.",
		Category:     CategoryEducation,
	},
	{
		Name:         "error-handling",
		ContractPath: "contracts/education/ErrorHandling.sol",
		TestPath:     "test/education/ErrorHandling.ts",
		Description:  "Signalling failure from encrypted logic with error code ciphertexts, since reverts would leak information.",
		Category:     CategoryEducation,
	},
	{
		Name:         "blind-auction",
		ContractPath: "contracts/advanced/BlindAuction.sol",
		TestPath:     "test/advanced/BlindAuction.ts",
		Description:  "A sealed-bid auction where bids stay encrypted end to end and the winner is selected by encrypted comparison.",
		Category:     CategoryAdvanced,
	},
	{
		Name:         "fhe-wordle",
		ContractPath: "contracts/advanced/FHEWordle.sol",
		TestPath:     "test/advanced/FHEWordle.ts",
		Description:  "A word guessing game whose secret word lives on chain as ciphertexts, with encrypted letter comparison.",
		Category:     CategoryAdvanced,
	},
	{
		Name:         "confidential-erc20",
		ContractPath: "contracts/openzeppelin/ConfidentialERC20.sol",
		TestPath:     "test/openzeppelin/ConfidentialERC20.ts",
		Description:  "An ERC20-style token with encrypted balances and transfer amounts, built on the OpenZeppelin confidential contracts.",
		Category:     CategoryOpenZeppelin,
	},
	{
		Name:         "vesting-wallet",
		ContractPath: "contracts/openzeppelin/ConfidentialVestingWallet.sol",
		TestPath:     "test/openzeppelin/ConfidentialVestingWallet.ts",
		Description:  "A vesting wallet that releases a confidential token on a schedule without revealing the vested amounts.",
		Category:     CategoryOpenZeppelin,
	},
}
