package domain

// DEKRegistrationState tracks where the user-funded registration stands.
type DEKRegistrationState string

const (
	DEKStateUnregistered DEKRegistrationState = "UNREGISTERED"
	DEKStateChecking     DEKRegistrationState = "CHECKING"
	DEKStateSubmitting   DEKRegistrationState = "SUBMITTING"
	DEKStateRegistered   DEKRegistrationState = "REGISTERED"
)

// IsTerminal returns true once no further registration attempt is needed.
func (s DEKRegistrationState) IsTerminal() bool {
	return s == DEKStateRegistered
}

// PlaceholderDEK is a valid compressed public key used for gas estimation
// before the user's own key exists.
const PlaceholderDEK = "0x02c9cacca8c5c5ebb24dc6080a933f6d52a072136a069083438293d71da36049dc"

// Account identifies the local user. MTWAddress is set when the account is a
// meta-transaction wallet controlled by WalletAddress.
type Account struct {
	WalletAddress string `json:"wallet_address"`
	MTWAddress    string `json:"mtw_address,omitempty"`
}

// AccountAddress is the address registered in the Accounts contract.
func (a Account) AccountAddress() string {
	if a.MTWAddress != "" {
		return a.MTWAddress
	}
	return a.WalletAddress
}

// ProofOfPossession proves the wallet key controls the signer being authorized.
type ProofOfPossession struct {
	V uint8    `json:"v"`
	R [32]byte `json:"r"`
	S [32]byte `json:"s"`
}

// AuthenticationMethod tells a remote service which key signs requests.
type AuthenticationMethod string

const (
	AuthMethodEncryptionKey AuthenticationMethod = "encryption_key"
	AuthMethodWalletKey     AuthenticationMethod = "wallet_key"
)

// AuthSigner describes how requests for an account are authenticated.
// RawKey carries the DEK public key when Method is AuthMethodEncryptionKey.
type AuthSigner struct {
	Method AuthenticationMethod `json:"authentication_method"`
	RawKey string               `json:"raw_key,omitempty"`
}

// AuthSignature is a request signature and the key that produced it.
// Signer is the DEK public key or the wallet address, following Method.
type AuthSignature struct {
	Method    AuthenticationMethod `json:"authentication_method"`
	Signer    string               `json:"signer"`
	Signature string               `json:"signature"`
}
