package rpc

import (
	"context"

	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/draughtsbot/findmove/draughts"
	"github.com/draughtsbot/findmove/notation"
)

type Client struct {
	conn *grpc.ClientConn
}

func Dial(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// FindMoves makes the client usable as an ai.MoveSelector.
func (c *Client) FindMoves(ctx context.Context, b *draughts.Board, color draughts.Color) ([]draughts.Move, error) {
	req := &wrappers.StringValue{Value: notation.FormatInput(color, b)}
	resp := new(wrappers.StringValue)
	if err := c.conn.Invoke(ctx, findMovesMethod, req, resp); err != nil {
		return nil, err
	}
	return notation.ParseMoves(resp.GetValue())
}

// FindMovesRaw sends already formatted program input.
func (c *Client) FindMovesRaw(ctx context.Context, input string) (string, error) {
	resp := new(wrappers.StringValue)
	if err := c.conn.Invoke(ctx, findMovesMethod, &wrappers.StringValue{Value: input}, resp); err != nil {
		return "", err
	}
	return resp.GetValue(), nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
