// Command ospfsim computes OSPF-style shortest-path routing tables and
// per-route performance estimates over a static topology snapshot.
package main

func main() {
	Execute()
}
