package st7789

// transaction runs fn between Select and Deselect. Deselect always runs, the
// first error is returned.
func (d *Dev) transaction(fn func() error) (err error) {
	if err = d.t.Select(); err != nil {
		return
	}
	err = fn()
	if derr := d.t.Deselect(); err == nil {
		err = derr
	}
	return
}

// command sends one opcode and leaves the line in data mode, so whatever
// follows is read as parameters or pixel data.
func (d *Dev) command(code byte) (err error) {
	if err = d.t.SetCommandMode(); err != nil {
		return
	}
	if err = d.t.Transmit(code); err != nil {
		return
	}
	return d.t.SetDataMode()
}

func (d *Dev) data(data ...byte) (err error) {
	for _, b := range data {
		if err = d.t.Transmit(b); err != nil {
			return
		}
	}
	return
}

func (d *Dev) commandData(code byte, params ...byte) (err error) {
	if err = d.command(code); err != nil {
		return
	}
	return d.data(params...)
}

// commands sends a list of {opcode, params...} records.
func (d *Dev) commands(commands ...[]byte) (err error) {
	for _, command := range commands {
		if err = d.commandData(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

// WriteRegister writes a single parameter byte to a controller register.
func (d *Dev) WriteRegister(addr, value byte) error {
	return d.transaction(func() error {
		return d.commandData(addr, value)
	})
}

// ReadRegister sends a read command and returns the first byte the controller
// clocks out. Drawing never reads from the controller.
func (d *Dev) ReadRegister(addr byte) (value byte, err error) {
	err = d.transaction(func() (err error) {
		if err = d.command(addr); err != nil {
			return
		}
		value, err = d.t.Receive()
		return
	})
	return
}

// ReadID returns the ID1, ID2 and ID3 bytes, one register read each.
func (d *Dev) ReadID() (id [3]byte, err error) {
	for i, addr := range []byte{st7789RDID1, st7789RDID2, st7789RDID3} {
		if id[i], err = d.ReadRegister(addr); err != nil {
			return
		}
	}
	return
}
