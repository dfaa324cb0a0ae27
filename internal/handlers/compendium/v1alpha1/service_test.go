package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-compendium/internal/handlers/compendium/v1alpha1"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
	compendiummock "github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium/mock"
)

// startServer serves the handler over an in-memory listener
func startServer(t *testing.T, service compendium.Service) v1alpha1.CompendiumServiceClient {
	t.Helper()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CompendiumService: service})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterCompendiumServiceServer(server, handler)
	go func() {
		_ = server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return v1alpha1.NewCompendiumServiceClient(conn)
}

func TestCompendiumService_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := compendiummock.NewMockService(ctrl)
	client := startServer(t, service)

	service.EXPECT().
		RollHitPoints(gomock.Any(), &compendium.RollHitPointsInput{RulesetID: "srd-5e", EntityID: "ent_goblin"}).
		Return(&compendium.RollHitPointsOutput{Notation: "2d6", Rolls: []int{1, 6}, Total: 7}, nil)

	req, err := structpb.NewStruct(map[string]any{"ruleset_id": "srd-5e", "entity_id": "ent_goblin"})
	require.NoError(t, err)

	resp, err := client.RollHitPoints(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2d6", resp.GetFields()["notation"].GetStringValue())
	assert.Equal(t, float64(7), resp.GetFields()["total"].GetNumberValue())
}

func TestCompendiumService_ErrorDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := compendiummock.NewMockService(ctrl)
	client := startServer(t, service)

	service.EXPECT().
		ListEntities(gomock.Any(), gomock.Any()).
		Return(nil, errors.NewValidationBuilder().RequiredField("ruleset_id").Build())

	_, err := client.ListEntities(context.Background(), &structpb.Struct{})
	require.Error(t, err)

	st := status.Convert(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	var violations []*errdetails.BadRequest_FieldViolation
	for _, detail := range st.Details() {
		if br, ok := detail.(*errdetails.BadRequest); ok {
			violations = br.GetFieldViolations()
		}
	}
	require.Len(t, violations, 1)
	assert.Equal(t, "ruleset_id", violations[0].GetField())
}
