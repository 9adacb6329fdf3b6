// Package routes defines the node API paths shared by the server and its
// clients.
package routes

import "fmt"

// APIVersion is the version segment all API routes are mounted under.
const APIVersion = 1

func Prefix() string {
	return fmt.Sprintf("/v%d", APIVersion)
}

func Info() string {
	return "/info"
}

func RuntimeCalls() string {
	return "/runtime/calls"
}

func SubmitCall() string {
	return "/calls"
}

func GetReceipt(requestID string) string {
	return "/receipts/" + requestID
}

func GetCodeInfo(codeHash string) string {
	return "/codes/" + codeHash
}

func GetContractInfo(address string) string {
	return "/contracts/" + address
}
