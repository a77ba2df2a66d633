// Command aescryptctl is a command-line front end over the aescipher
// core for encrypting and decrypting files under AES-CBC/AES-CTR.
package main

import "github.com/sshaes/aescipher/internal/cli"

func main() {
	cli.Execute()
}
