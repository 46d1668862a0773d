package copt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gocopt/copt"
	"github.com/bartolsthoorn/gocopt/internal/native"
	"github.com/bartolsthoorn/gocopt/internal/native/fake"
)

func TestNewEnvWithConfig(t *testing.T) {
	tests := map[string]struct {
		cfg         copt.EnvConfig
		fakeCfg     fake.Config
		expErr      bool
		expSentinel error
		expCode     int
		expNoCalls  bool
		expLicDir   string
		expSettings map[string]string
	}{
		"A plain config should create a default environment.": {},

		"A license directory should be forwarded.": {
			cfg:       copt.EnvConfig{LicenseDir: "/opt/copt/license"},
			expLicDir: "/opt/copt/license",
		},

		"Settings should be applied through an env config.": {
			cfg: copt.EnvConfig{Settings: map[string]string{
				"CLIENT_WAITTIME": "10",
				"CLUSTER_HOST":    "cluster.local",
			}},
			expSettings: map[string]string{
				"CLIENT_WAITTIME": "10",
				"CLUSTER_HOST":    "cluster.local",
			},
		},

		"A license directory with settings should fail.": {
			cfg: copt.EnvConfig{
				LicenseDir: "/opt/copt/license",
				Settings:   map[string]string{"CLUSTER_HOST": "x"},
			},
			expErr:     true,
			expNoCalls: true,
		},

		"A NUL byte in a setting should fail before any native call.": {
			cfg:         copt.EnvConfig{Settings: map[string]string{"CLUSTER_HOST": "a\x00b"}},
			expErr:      true,
			expSentinel: copt.ErrInvalidName,
			expNoCalls:  true,
		},

		"A native failure should carry its code.": {
			fakeCfg: fake.Config{CreateEnvRetcode: native.License},
			expErr:  true,
			expCode: int(native.License),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			api := newBackend(test.fakeCfg)
			cfg := test.cfg
			cfg.Backend = api

			env, err := copt.NewEnvWithConfig(cfg)
			if test.expErr {
				require.Error(err)
				if test.expSentinel != nil {
					assert.ErrorIs(err, test.expSentinel)
				}
				assert.Equal(test.expCode, copt.Code(err))
				if test.expNoCalls {
					assert.Zero(api.Calls("CreateEnv"))
					assert.Zero(api.Calls("CreateEnvConfig"))
				}
				assert.Zero(api.LiveEnvs())
				return
			}
			require.NoError(err)
			defer env.Close()

			assert.True(env.IsOwner())
			assert.Equal(1, api.LiveEnvs())
			assert.Equal(api.Calls("CreateEnvConfig"), api.Calls("DeleteEnvConfig"))
			if test.expSettings != nil {
				assert.Equal(len(test.expSettings), api.Calls("SetEnvConfig"))
				assert.Equal(1, api.Calls("CreateEnvWithConfig"))
			}
			if test.expLicDir != "" {
				assert.Equal(1, api.Calls("CreateEnvWithPath"))
			}

			m, err := copt.NewModel(env)
			require.NoError(err)
			defer m.Close()
		})
	}
}

func TestEnvOwnership(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	env, api := newEnv(t, fake.Config{})
	view := env.ShallowCopy()
	assert.False(view.IsOwner())
	assert.NoError(view.Close())
	assert.Equal(1, api.LiveEnvs(), "closing a view should not delete the environment")

	m, err := copt.NewModel(view)
	require.NoError(err)

	// The native environment outlives its owner while a model still uses it.
	require.NoError(env.Close())
	assert.Equal(1, api.LiveEnvs())
	_, err = m.AddVar("x", copt.Continuous, 1, 0, 1, nil, nil)
	assert.NoError(err)

	_, err = copt.NewModel(env)
	assert.ErrorIs(err, copt.ErrClosed)
	_, err = copt.NewModel(view)
	assert.ErrorIs(err, copt.ErrClosed, "a view closes with its owner")
	_, err = view.LicenseMessage()
	assert.ErrorIs(err, copt.ErrClosed)

	require.NoError(m.Close())
	assert.Equal(0, api.LiveEnvs())
	assert.Equal(1, api.Calls("DeleteEnv"))

	assert.NoError(env.Close(), "closing twice should be a no-op")
	assert.NoError(m.Close(), "closing twice should be a no-op")
	assert.Equal(1, api.Calls("DeleteEnv"))
	assert.Equal(1, api.Calls("DeleteProb"))
}

func TestEnvMessages(t *testing.T) {
	assert := assert.New(t)

	env, _ := newEnv(t, fake.Config{Banner: "Cardinal Optimizer v7.2.0 test"})

	b, err := env.Banner()
	assert.NoError(err)
	assert.Equal("Cardinal Optimizer v7.2.0 test", b)

	msg, err := env.LicenseMessage()
	assert.NoError(err)
	assert.NotEmpty(msg)

	msg, err = env.RetcodeMessage(int(native.License))
	assert.NoError(err)
	assert.NotEmpty(msg)

	assert.NoError(env.Close())
	_, err = env.LicenseMessage()
	assert.ErrorIs(err, copt.ErrClosed)
}
