package websocketPkg

import (
	"PhysioGolang/pkg/movenet"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type IWebsocket interface {
	EstimatePose(frame []byte) ([]movenet.Keypoint, error)
	IsConnected() bool
	Reconnect() error
	CloseConnections()
}

type webSocketClient struct {
	poseConn     *websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

type poseResponse struct {
	Keypoints []movenet.Keypoint `json:"keypoints"`
	Error     string             `json:"error,omitempty"`
}

func NewMoveNetClient() IWebsocket {
	client := &webSocketClient{
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go client.connectInBackground()

	return client
}

func (c *webSocketClient) connectInBackground() {
	err := c.Reconnect()
	if err != nil {
		log.Printf("Initial connection to pose estimation failed: %v. Will retry on demand.", err)
	} else {
		log.Printf("Successfully connected to pose estimation service")
	}
}

func (c *webSocketClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.poseConn != nil
}

func (c *webSocketClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.poseConn != nil {
		c.poseConn.Close()
		c.poseConn = nil
	}

	url := getWebSocketURL()

	log.Printf("Connecting to pose estimation at %s", url)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	c.poseConn = conn

	go c.keepAlive()

	return nil
}

func (c *webSocketClient) CloseConnections() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.poseConn != nil {
		c.poseConn.Close()
		c.poseConn = nil
	}
}

func (c *webSocketClient) keepAlive() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		conn := c.poseConn

		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(c.writeTimeout),
		)

		if err != nil {
			log.Printf("Ping failed for pose estimation, marking connection as dead: %v", err)
			c.poseConn = nil
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

func (c *webSocketClient) getConnection() (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.poseConn == nil {
		return nil, fmt.Errorf("not connected to pose estimation service")
	}

	return c.poseConn, nil
}

// EstimatePose sends a binary camera frame to the MoveNet service and returns
// the detected keypoints.
func (c *webSocketClient) EstimatePose(frame []byte) ([]movenet.Keypoint, error) {
	conn, err := c.getConnection()
	if err != nil {
		if err := c.Reconnect(); err != nil {
			return nil, fmt.Errorf("cannot connect to pose estimation service: %w", err)
		}
		conn, err = c.getConnection()
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	log.Printf("Sending pose frame of size: %d bytes", len(frame))
	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		c.poseConn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error sending pose frame: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))

	c.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.mu.Lock()
		c.poseConn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading pose message: %w", err)
	}

	c.mu.Lock()
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	c.mu.Unlock()

	log.Printf("Received response from pose estimation service")

	var result poseResponse
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling pose response: %w", err)
	}

	if result.Error != "" {
		return nil, fmt.Errorf("pose estimation failed: %s", result.Error)
	}

	log.Printf("Pose estimation returned %d keypoints", len(result.Keypoints))

	return result.Keypoints, nil
}

func getWebSocketURL() string {
	url := os.Getenv("MOVENET_WS_URL")
	if url == "" {
		url = "ws://localhost:8000/api/v1/pose/ws"
	}
	return url
}
