package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firestore": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIRESTORE_PROJECTID", want: "firestore.projectId"},
		{envKey: "FIRESTORE_CREDENTIALSPATH", want: "firestore.credentialsPath"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestDefaultLimitOrFallback(t *testing.T) {
	cfg := &Config{}
	if got := cfg.DefaultLimitOrFallback(); got != defaultRecommendLimit {
		t.Fatalf("DefaultLimitOrFallback() = %d, want %d", got, defaultRecommendLimit)
	}

	cfg.Recommend = &RecommendConfig{DefaultLimit: 25}
	if got := cfg.DefaultLimitOrFallback(); got != 25 {
		t.Fatalf("DefaultLimitOrFallback() = %d, want 25", got)
	}
}
