package cli

// This file implements the catalog commands: export, lookup, list and check.

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"errstore/pkg/errstore"
)

// Manager runs catalog commands with injected dependencies.
type Manager struct {
	loader *StoreLoader
	logger *zap.Logger
}

// NewManager creates a Manager with the given dependencies.
func NewManager(loader *StoreLoader, logger *zap.Logger) *Manager {
	return &Manager{loader: loader, logger: logger}
}

// DefaultManager returns a Manager loading catalogs with logger.
func DefaultManager(logger *zap.Logger) *Manager {
	return NewManager(NewStoreLoader(logger), logger)
}

// NewExportCmd builds the export command.
func NewExportCmd(logger *zap.Logger) *cobra.Command {
	return DefaultManager(logger).newExportCmd()
}

// NewLookupCmd builds the lookup command.
func NewLookupCmd(logger *zap.Logger) *cobra.Command {
	return DefaultManager(logger).newLookupCmd()
}

// NewListCmd builds the list command.
func NewListCmd(logger *zap.Logger) *cobra.Command {
	return DefaultManager(logger).newListCmd()
}

// NewCheckCmd builds the check command.
func NewCheckCmd(logger *zap.Logger) *cobra.Command {
	return DefaultManager(logger).newCheckCmd()
}

func (m *Manager) newExportCmd() *cobra.Command {
	var flags StoreFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export descriptors for the front-end error library",
		Long:  "Print the client export {errorMetaMap, errorCodes} of the merged catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := m.loader.Load(flags)
			if err != nil {
				return err
			}
			return writeEncoded(cmd.OutOrStdout(), cfg.Format, store.ExportForClient())
		},
	}

	flags.bind(cmd, true)
	return cmd
}

func (m *Manager) newLookupCmd() *cobra.Command {
	var flags StoreFlags
	var debugArgs, userArgs, adminArgs []string

	cmd := &cobra.Command{
		Use:   "lookup CODE",
		Short: "Resolve one error code",
		Long:  "Resolve an error code with formatter arguments and print the resulting descriptor. Unknown codes resolve to UNKNOWN_ERROR.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return newWithSentinel(ErrInvalidCode, "error code must not be empty")
			}
			store, cfg, err := m.loader.Load(flags)
			if err != nil {
				return err
			}

			code := errstore.ParseCode(args[0])
			if _, ok := store.Get(code); !ok {
				m.logger.Warn("Unknown error code, falling back", zap.String("code", code.String()))
			}
			status := errstore.StatusEmitterFunc(func(status int) {
				m.logger.Debug("Resolved HTTP status", zap.Int("status", status))
			})
			resolved := store.Lookup(code,
				errstore.DebugArgs(toAny(debugArgs)...),
				errstore.UserArgs(toAny(userArgs)...),
				errstore.AdminArgs(toAny(adminArgs)...),
				errstore.EmitTo(status))
			return writeEncoded(cmd.OutOrStdout(), cfg.Format, resolved)
		},
	}

	flags.bind(cmd, true)
	cmd.Flags().StringArrayVar(&debugArgs, "debug-arg", nil, "Argument for the debug message formatter (repeatable)")
	cmd.Flags().StringArrayVar(&userArgs, "user-arg", nil, "Argument for the user message formatter (repeatable)")
	cmd.Flags().StringArrayVar(&adminArgs, "admin-arg", nil, "Argument for the admin message formatter (repeatable)")
	return cmd
}

func (m *Manager) newListCmd() *cobra.Command {
	var flags StoreFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered error codes",
		Long:  "Show every descriptor of the merged catalogs, baseline included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := m.loader.Load(flags)
			if err != nil {
				return err
			}
			rows := [][]string{{"CODE", "NAME", "HTTP", "USER MESSAGE"}}
			for _, d := range store.Descriptors() {
				rows = append(rows, []string{d.Code.String(), d.Name, strconv.Itoa(d.HTTPStatus), d.User.String()})
			}
			printer := NewPrinter(cmd.OutOrStdout())
			if err := printer.Table(rows); err != nil {
				return err
			}
			printer.Printf("%d descriptors\n", len(rows)-1)
			return nil
		},
	}

	flags.bind(cmd, false)
	return cmd
}

func (m *Manager) newCheckCmd() *cobra.Command {
	var flags StoreFlags
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate catalogs",
		Long:  "Load and merge every catalog, failing on duplicate codes or names across catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(cmd.OutOrStdout())
			printer.Quiet = quiet
			flags.Strict = true
			printer.Section("Checking catalogs")
			store, cfg, err := m.loader.Load(flags)
			if err != nil {
				printer.Error(err.Error())
				if errors.Is(err, errstore.ErrDuplicateCode) || errors.Is(err, errstore.ErrDuplicateName) {
					return wrapWithSentinel(ErrDuplicatesFound, err, fmt.Sprintf("catalog check failed: %v", err))
				}
				return err
			}
			for _, path := range cfg.Catalogs {
				printer.Info(path)
			}
			printer.Success(fmt.Sprintf("%d descriptors from %d catalog(s), no duplicates", store.Len(), len(cfg.Catalogs)))
			return nil
		},
	}

	flags.bind(cmd, false)
	cmd.Flags().Lookup("overwrite").Hidden = true
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print failures")
	return cmd
}

func toAny(values []string) []any {
	if len(values) == 0 {
		return nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
