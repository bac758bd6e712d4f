package main

import "github.com/RoynerS/Gestor-inteligente-de-archivos/cmd"

func main() {
	cmd.Execute()
}
