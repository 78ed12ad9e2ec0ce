package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerformanceProfile(t *testing.T) {
	t.Run("records phases with elapsed times", func(t *testing.T) {
		profile := &PerformanceProfile{}
		ctx := context.WithValue(context.Background(), "performanceProfile", profile)

		got := GetPerformanceProfile(ctx)
		require.Same(t, profile, got)

		got.Add("loaded inputs")
		got.Add("computed")
		// the first Add seeds a zero-elapsed anchor event
		require.Len(t, profile.Events, 3)
		require.Equal(t, "loaded inputs", profile.Events[0].Name)
		require.Equal(t, int64(0), profile.Events[0].ElapsedMs)
		require.Equal(t, "computed", profile.Events[2].Name)
	})

	t.Run("contexts without a profile are safe", func(t *testing.T) {
		profile := GetPerformanceProfile(context.Background())
		require.Nil(t, profile)
		require.NotPanics(t, func() {
			profile.Add("phase")
		})
	})
}

func TestDbSecretsToConnectionStr(t *testing.T) {
	secrets := DbSecrets{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		Database: "basketdesk",
	}

	require.Equal(
		t,
		"host=localhost port=5432 user=postgres password=postgres dbname=basketdesk sslmode=disable",
		secrets.ToConnectionStr(),
	)

	secrets.EnableSsl = true
	require.NotContains(t, secrets.ToConnectionStr(), "sslmode=disable")
}
