package pagecache

import (
	"net/rpc"

	"github.com/google/uuid"
)

const ServiceName = "PageCacheAPI"

type PageCache interface {
	// Visit ...
	Visit(args VisitArgs, reply VisitReply) error
	// History ...
	History(args HistoryArgs, reply HistoryReply) error
}

type VisitArgs struct {
	URL string
}

type VisitReply struct {
	Contents string
	Pages    []string
}

type HistoryArgs struct {
	// Limit caps the number of returned pages; 0 returns all of them.
	Limit int
}

type HistoryReply struct {
	SessionID uuid.UUID
	Pages     []string
}

// Client is a typed wrapper around an HTTP net/rpc connection.
type Client struct {
	RpcClient *rpc.Client
}

func Dial(addr string) (*Client, error) {
	rpcClient, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{RpcClient: rpcClient}, nil
}

func (c *Client) Visit(url string) (*VisitReply, error) {
	var reply VisitReply
	args := &VisitArgs{URL: url}

	err := c.RpcClient.Call(ServiceName+".Visit", args, &reply)
	if err != nil {
		return nil, err
	}

	return &reply, nil
}

func (c *Client) History(limit int) (*HistoryReply, error) {
	var reply HistoryReply
	args := &HistoryArgs{Limit: limit}

	err := c.RpcClient.Call(ServiceName+".History", args, &reply)
	if err != nil {
		return nil, err
	}

	return &reply, nil
}

func (c *Client) Close() error {
	return c.RpcClient.Close()
}
