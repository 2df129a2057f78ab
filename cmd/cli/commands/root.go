package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/internal/config"
	"github.com/lunchdesk/lunchdesk/internal/logger"
	"github.com/lunchdesk/lunchdesk/internal/session"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/client"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/routes"
	"github.com/lunchdesk/lunchdesk/pkg/store"
)

// flag names
const (
	flagServerAddress = "server-address"
	flagSessionFile   = "session-file"
	flagCompany       = "company"
)

// environment variable names
const (
	envServerAddress = "LUNCHDESK_SERVER_ADDRESS"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// queryStore caches list responses for the lifetime of the process
	queryStore *store.Store
	// cfg is the loaded configuration
	cfg *config.Config
	// sess is the signed-in operator's session
	sess *session.Session
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
	// sessionPath is where the session is persisted. Flag parsing sets this.
	sessionPath string
)

// initClient initializes the API client with the session token
func initClient() error {
	c, err := newClient(getSession().Token)
	if err != nil {
		return err
	}
	apiClient = c
	return nil
}

func newClient(token string) (client.Client, error) {
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress
	opts.Timeout = getConfig().Client.Timeout
	opts.AuthToken = token
	return client.NewClient(opts)
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "lunchdesk",
	Short: "lunchdesk - operator tooling for the lunch ordering dashboard",
	Long: `lunchdesk lists, searches and edits the companies, employers, orders, menus,
payments and reports of the lunch ordering dashboard API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Configure(cfg.Log.Level, os.Stderr)

		// Check if the server address flag was explicitly set by the user.
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}
		// serverAddress now has the precedence: Flag > Env Var > Default
		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		logger.Debugf("lunchdesk server address: %s", serverAddress)

		if !cmd.Flags().Changed(flagSessionFile) {
			sessionPath = cfg.Session.Path
		}
		sess, err = session.Load(sessionPath)
		if err != nil {
			return err
		}

		queryStore = store.New(store.Options{Size: cfg.Cache.Size, TTL: cfg.Cache.TTL})
		return initClient()
	},
}

func init() {
	// Set a basic default for the flag. PersistentPreRunE will handle env var override.
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL, "Address of the dashboard API server (env: "+envServerAddress+")")
	RootCmd.PersistentFlags().StringVar(&sessionPath, flagSessionFile, config.DefaultSessionPath(), "Path of the session file (env: LUNCHDESK_SESSION_FILE)")

	addCommands(RootCmd)
}

// addCommands attaches every subcommand to root
func addCommands(root *cobra.Command) {
	root.AddCommand(
		newListCmd(),
		newBrowseCmd(),
		newCompaniesCmd(),
		newUsersCmd(),
		newOrdersCmd(),
		newMenusCmd(),
		newPaymentsCmd(),
		newReportsCmd(),
		newStatsCmd(),
		newLegalCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// getStore returns the process query store
func getStore() *store.Store {
	if queryStore == nil {
		queryStore = store.New(store.Options{})
	}
	return queryStore
}

// getConfig returns the loaded configuration, or the defaults when none was loaded
func getConfig() *config.Config {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return cfg
}

// getSession returns the loaded session, or an empty one
func getSession() *session.Session {
	if sess == nil {
		sess = session.New()
	}
	return sess
}

// commandContext returns the command's context, falling back to the background context
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// parseID parses a positional resource id
func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return uint(id), nil
}

// printJSON pretty prints v to w
func printJSON(w io.Writer, v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(prettyJSON))
	return err
}
