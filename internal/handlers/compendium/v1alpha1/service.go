package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgcompendium.api.v1alpha1.CompendiumService"

// Full method names
const (
	RenderEntityMethod  = "/" + ServiceName + "/RenderEntity"
	RenderPayloadMethod = "/" + ServiceName + "/RenderPayload"
	ListEntitiesMethod  = "/" + ServiceName + "/ListEntities"
	RollHitPointsMethod = "/" + ServiceName + "/RollHitPoints"
)

// CompendiumServiceServer is the server API for the compendium service.
// Messages are google.protobuf.Struct documents.
type CompendiumServiceServer interface {
	RenderEntity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RenderPayload(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListEntities(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollHitPoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterCompendiumServiceServer registers srv on s
func RegisterCompendiumServiceServer(s grpc.ServiceRegistrar, srv CompendiumServiceServer) {
	s.RegisterService(&CompendiumServiceDesc, srv)
}

// CompendiumServiceDesc describes the compendium service for grpc.Server
var CompendiumServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CompendiumServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RenderEntity", Handler: unaryHandler(RenderEntityMethod, CompendiumServiceServer.RenderEntity)},
		{MethodName: "RenderPayload", Handler: unaryHandler(RenderPayloadMethod, CompendiumServiceServer.RenderPayload)},
		{MethodName: "ListEntities", Handler: unaryHandler(ListEntitiesMethod, CompendiumServiceServer.ListEntities)},
		{MethodName: "RollHitPoints", Handler: unaryHandler(RollHitPointsMethod, CompendiumServiceServer.RollHitPoints)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgcompendium/api/v1alpha1/compendium.proto",
}

type unaryMethod func(CompendiumServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, method unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(srv.(CompendiumServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return method(srv.(CompendiumServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CompendiumServiceClient is the client API for the compendium service
type CompendiumServiceClient interface {
	RenderEntity(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RenderPayload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListEntities(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RollHitPoints(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type compendiumServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCompendiumServiceClient creates a client over cc
func NewCompendiumServiceClient(cc grpc.ClientConnInterface) CompendiumServiceClient {
	return &compendiumServiceClient{cc: cc}
}

func (c *compendiumServiceClient) invoke(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *compendiumServiceClient) RenderEntity(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, RenderEntityMethod, in, opts...)
}

func (c *compendiumServiceClient) RenderPayload(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, RenderPayloadMethod, in, opts...)
}

func (c *compendiumServiceClient) ListEntities(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, ListEntitiesMethod, in, opts...)
}

func (c *compendiumServiceClient) RollHitPoints(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, RollHitPointsMethod, in, opts...)
}
