package main

import "github.com/MediCampHub/medicamp-services/cmd"

func main() {
	cmd.Execute()
}
