//go:build gomock || generate

package moqdemux

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package moqdemux -self_package github.com/mengelbart/moqdemux -destination mock_receive_stream_test.go github.com/mengelbart/moqdemux ReceiveStream"

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package moqdemux -self_package github.com/mengelbart/moqdemux -destination mock_connection_test.go github.com/mengelbart/moqdemux Connection"

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package moqdemux -self_package github.com/mengelbart/moqdemux -destination mock_object_handler_test.go github.com/mengelbart/moqdemux ObjectHandler"
