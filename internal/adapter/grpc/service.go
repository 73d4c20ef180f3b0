package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "wealthflow.v1.InsightsService"

// InsightsServiceServer is the server API for InsightsService.
// Requests and responses are google.protobuf.Struct documents.
type InsightsServiceServer interface {
	GetPortfolio(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetMonthlyActivity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetExpenseActivity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetNetWorth(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBalances(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetHealthSummary(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpsertSnapshot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSnapshot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteSnapshot(context.Context, *structpb.Struct) (*structpb.Struct, error)

	CreateAsset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteAsset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordDeposit(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordTrade(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LogExpense(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteExpense(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateSavingsBucket(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteSavingsBucket(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordSavingsTransaction(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordEmergencyTransaction(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LogHealth(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(InsightsServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func method(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(InsightsServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(InsightsServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// InsightsServiceDesc describes InsightsService for grpc.ServiceRegistrar
var InsightsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InsightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method("GetPortfolio", InsightsServiceServer.GetPortfolio),
		method("GetMonthlyActivity", InsightsServiceServer.GetMonthlyActivity),
		method("GetExpenseActivity", InsightsServiceServer.GetExpenseActivity),
		method("GetNetWorth", InsightsServiceServer.GetNetWorth),
		method("GetBalances", InsightsServiceServer.GetBalances),
		method("GetHealthSummary", InsightsServiceServer.GetHealthSummary),
		method("UpsertSnapshot", InsightsServiceServer.UpsertSnapshot),
		method("UpdateSnapshot", InsightsServiceServer.UpdateSnapshot),
		method("DeleteSnapshot", InsightsServiceServer.DeleteSnapshot),
		method("CreateAsset", InsightsServiceServer.CreateAsset),
		method("DeleteAsset", InsightsServiceServer.DeleteAsset),
		method("RecordDeposit", InsightsServiceServer.RecordDeposit),
		method("RecordTrade", InsightsServiceServer.RecordTrade),
		method("LogExpense", InsightsServiceServer.LogExpense),
		method("DeleteExpense", InsightsServiceServer.DeleteExpense),
		method("CreateSavingsBucket", InsightsServiceServer.CreateSavingsBucket),
		method("DeleteSavingsBucket", InsightsServiceServer.DeleteSavingsBucket),
		method("RecordSavingsTransaction", InsightsServiceServer.RecordSavingsTransaction),
		method("RecordEmergencyTransaction", InsightsServiceServer.RecordEmergencyTransaction),
		method("LogHealth", InsightsServiceServer.LogHealth),
		method("GetSettings", InsightsServiceServer.GetSettings),
		method("UpdateSettings", InsightsServiceServer.UpdateSettings),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wealthflow/v1/insights.proto",
}

// RegisterInsightsServiceServer registers srv on s
func RegisterInsightsServiceServer(s grpc.ServiceRegistrar, srv InsightsServiceServer) {
	s.RegisterService(&InsightsServiceDesc, srv)
}

// InsightsClient calls InsightsService methods by name
type InsightsClient struct {
	cc grpc.ClientConnInterface
}

// NewInsightsClient creates a client over cc
func NewInsightsClient(cc grpc.ClientConnInterface) *InsightsClient {
	return &InsightsClient{cc: cc}
}

// Call invokes the named method. A nil in sends an empty request.
func (c *InsightsClient) Call(ctx context.Context, name string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+name, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
