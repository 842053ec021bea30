// Command atomixctl connects a partitioned proxy client to a cluster and
// streams its aggregate connectivity state.
//
// It is a diagnostic tool: point it at the NATS transport serving a
// primitive's partitions and it reports every aggregate state transition
// until interrupted.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/woojoong88/atomix"
	"github.com/woojoong88/atomix/cluster"
	"github.com/woojoong88/atomix/internal/logging"
	"github.com/woojoong88/atomix/partitioner"
	"github.com/woojoong88/atomix/transport/natsproxy"
	"github.com/woojoong88/atomix/types"
)

var flags struct {
	server        string
	subjectPrefix string
	partitions    int
	name          string
	primitiveType string
	protocol      string
	bootstrap     []string
	key           string
}

func main() {
	cmd := &cobra.Command{
		Use:          "atomixctl",
		Short:        "Watch the aggregate state of a partitioned primitive client",
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringVarP(&flags.server, "server", "s", nats.DefaultURL, "NATS server URL")
	cmd.Flags().StringVar(&flags.subjectPrefix, "subject-prefix", "", "subject prefix partitions are served under")
	cmd.Flags().IntVarP(&flags.partitions, "partitions", "n", 3, "number of partitions")
	cmd.Flags().StringVar(&flags.name, "name", "default", "primitive name")
	cmd.Flags().StringVar(&flags.primitiveType, "type", "map", "primitive type")
	cmd.Flags().StringVar(&flags.protocol, "protocol", "multi-raft", "replication protocol name")
	cmd.Flags().StringSliceVarP(&flags.bootstrap, "bootstrap", "b", nil, "cluster bootstrap nodes (NAME:HOST:PORT)")
	cmd.Flags().StringVarP(&flags.key, "key", "k", "", "optional key to print the owning partition for")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logger := logging.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	nodes, err := cluster.ParseNodes(flags.bootstrap)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		logger.Info("bootstrap node", "id", node.ID, "address", node.Address())
	}

	nc, err := nats.Connect(flags.server, nats.Name("atomixctl"))
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	defer nc.Close()

	ids := make([]types.PartitionID, 0, flags.partitions)
	for i := 1; i <= flags.partitions; i++ {
		ids = append(ids, types.PartitionID(i))
	}

	sessions, err := natsproxy.NewSessions(nc, natsproxy.Config{SubjectPrefix: flags.subjectPrefix}, ids)
	if err != nil {
		return err
	}

	cfg := atomix.Config{
		Name:     flags.name,
		Type:     flags.primitiveType,
		Protocol: flags.protocol,
	}
	client, err := atomix.NewProxyClient(&cfg, sessions, partitioner.NewModulo(), atomix.WithLogger(logger))
	if err != nil {
		return err
	}

	cancel := client.OnStateChange(func(state atomix.State) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s/%s: %s\n", client.Type(), client.Name(), state)
	})
	defer cancel()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("connect primitive: %w", err)
	}

	if flags.key != "" {
		id, err := client.PartitionIDForKey(flags.key)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "key %q is owned by %s\n", flags.key, id)
	}

	<-ctx.Done()

	return client.Close(context.Background())
}
