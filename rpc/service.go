package rpc

import (
	"context"
	"log"
	"net"
	"strings"

	"github.com/golang/protobuf/ptypes/wrappers"
	"golang.org/x/net/netutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/draughtsbot/findmove/ai"
	"github.com/draughtsbot/findmove/notation"
)

const (
	serviceName     = "draughts.Mover"
	findMovesMethod = "/" + serviceName + "/FindMoves"
)

// MoverServer answers FindMoves requests. The request carries program
// input text and the response carries the move line, empty when the
// selector had nothing to offer.
type MoverServer interface {
	FindMoves(ctx context.Context, req *wrappers.StringValue) (*wrappers.StringValue, error)
}

func findMovesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrappers.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoverServer).FindMoves(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: findMovesMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoverServer).FindMoves(ctx, req.(*wrappers.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

var moverServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*MoverServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FindMoves",
			Handler:    findMovesHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterMoverServer(s *grpc.Server, srv MoverServer) {
	s.RegisterService(&moverServiceDesc, srv)
}

type server struct {
	selector ai.MoveSelector
	debug    int
}

func (s *server) FindMoves(ctx context.Context, req *wrappers.StringValue) (*wrappers.StringValue, error) {
	color, b, err := notation.ParseInput(strings.NewReader(req.GetValue()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ms, err := s.selector.FindMoves(ctx, b, color)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if s.debug > 0 {
		log.Printf("FindMoves color=%c moves=%d", byte(color), len(ms))
	}
	return &wrappers.StringValue{Value: notation.FormatMoves(ms)}, nil
}

func NewServer(sel ai.MoveSelector, debug int) *grpc.Server {
	s := grpc.NewServer()
	RegisterMoverServer(s, &server{selector: sel, debug: debug})
	return s
}

// Serve accepts at most maxConns concurrent connections on lis; zero
// means no limit.
func Serve(s *grpc.Server, lis net.Listener, maxConns int) error {
	if maxConns > 0 {
		lis = netutil.LimitListener(lis, maxConns)
	}
	return s.Serve(lis)
}
