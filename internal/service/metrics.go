package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the counters shared by the comment, identity and DEK services.
type Metrics struct {
	CommentsEncrypted *prometheus.CounterVec
	CommentsDecrypted *prometheus.CounterVec
	IdentityClaims    *prometheus.CounterVec
	MappingConflicts  prometheus.Counter
	DEKRegistrations  *prometheus.CounterVec
}

// NewMetrics registers the counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CommentsEncrypted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wallet_identity",
			Name:      "comments_encrypted_total",
			Help:      "Outgoing comments by outcome (encrypted, plaintext, failed).",
		}, []string{"result"}),
		CommentsDecrypted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wallet_identity",
			Name:      "comments_decrypted_total",
			Help:      "Incoming comments by outcome (decrypted, raw, hidden, cached).",
		}, []string{"result"}),
		IdentityClaims: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wallet_identity",
			Name:      "identity_claims_total",
			Help:      "Phone number claims by verification outcome.",
		}, []string{"result"}),
		MappingConflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wallet_identity",
			Name:      "mapping_salt_conflicts_total",
			Help:      "Verified claims dropped because the number already has a different salt.",
		}),
		DEKRegistrations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wallet_identity",
			Name:      "dek_registrations_total",
			Help:      "DEK registration attempts by mode and resulting state.",
		}, []string{"mode", "state"}),
	}
}
